package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"luxeshop/internal/domain"
	"luxeshop/internal/repos"
	"luxeshop/internal/services"
	"luxeshop/internal/stores"
)

func newState(t *testing.T) *repos.StateDB {
	t.Helper()
	state, err := repos.OpenState("")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { state.Close() })
	return state
}

func validForm() services.CheckoutForm {
	return services.CheckoutForm{
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@luxeshop.test",
		Address:   "12 Ring Road",
		City:      "Accra",
		Zip:       "00233",
	}
}

func TestCheckoutPlaceHappyPath(t *testing.T) {
	state := newState(t)
	notifs := stores.NewNotificationStore(state)
	orders := stores.NewOrderStore(state, nil, func(n domain.Notification) { notifs.Add(n) })
	cart := stores.NewCartStore(state)
	svc := services.NewCheckoutService(cart, orders)

	cart.AddItem(domain.Product{ID: "fashion-1", Name: "Silk Scarf", Price: 100})

	order, fieldErrs, err := svc.Place(validForm())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	require.Equal(t, domain.OrderPending, order.Status)
	require.InDelta(t, 110.00, order.TotalAmount, 1e-9) // 10% tax on 100
	require.Equal(t, "Ama Mensah", order.CustomerName)
	require.Len(t, order.Items, 1)
	require.Equal(t, "fashion-1", order.Items[0].ProductID)

	// cart cleared only after the order exists
	require.Empty(t, cart.Items())

	// exactly one unread notification referencing the order
	require.Equal(t, 1, notifs.UnreadCount())
	require.Contains(t, notifs.Notifications()[0].Message, order.OrderNumber)
}

func TestCheckoutTotalRounding(t *testing.T) {
	state := newState(t)
	orders := stores.NewOrderStore(state, nil, nil)
	cart := stores.NewCartStore(state)
	svc := services.NewCheckoutService(cart, orders)

	cart.AddItem(domain.Product{ID: "a", Price: 10.01})
	cart.UpdateQuantity("a", 3) // 30.03 * 1.10 = 33.033

	order, _, err := svc.Place(validForm())
	require.NoError(t, err)
	require.Equal(t, 33.03, order.TotalAmount)
}

func TestCheckoutSnapshotIsolation(t *testing.T) {
	state := newState(t)
	catalog := stores.NewCatalogStore(state, nil)
	orders := stores.NewOrderStore(state, nil, nil)
	cart := stores.NewCartStore(state)
	svc := services.NewCheckoutService(cart, orders)

	p := catalog.AddProduct(domain.Product{Name: "Lamp", Price: 50, Category: "Home"})
	cart.AddItem(p)

	order, _, err := svc.Place(validForm())
	require.NoError(t, err)

	// later catalog changes must not rewrite the frozen order line
	newPrice := 80.0
	_, found := catalog.UpdateProduct(p.ID, stores.ProductUpdate{Price: &newPrice})
	require.True(t, found)

	got, _ := orders.Get(order.ID)
	require.Equal(t, 50.0, got.Items[0].Price)
}

func TestCheckoutInvalidForm(t *testing.T) {
	state := newState(t)
	orders := stores.NewOrderStore(state, nil, nil)
	cart := stores.NewCartStore(state)
	svc := services.NewCheckoutService(cart, orders)

	cart.AddItem(domain.Product{ID: "a", Price: 10})

	form := validForm()
	form.Email = "not-an-email"
	form.Zip = "123"
	form.FirstName = ""

	_, fieldErrs, err := svc.Place(form)
	require.ErrorIs(t, err, services.ErrInvalidForm)
	require.Contains(t, fieldErrs, "Email")
	require.Contains(t, fieldErrs, "Zip")
	require.Contains(t, fieldErrs, "FirstName")

	// cart untouched, no order created
	require.Len(t, cart.Items(), 1)
	require.Empty(t, orders.Orders())
}

func TestCheckoutEmptyCart(t *testing.T) {
	state := newState(t)
	orders := stores.NewOrderStore(state, nil, nil)
	cart := stores.NewCartStore(state)
	svc := services.NewCheckoutService(cart, orders)

	_, _, err := svc.Place(validForm())
	require.ErrorIs(t, err, services.ErrCartEmpty)
	require.Empty(t, orders.Orders())
}
