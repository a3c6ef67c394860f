package stores_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"luxeshop/internal/domain"
	"luxeshop/internal/stores"
)

func TestOrderAddDefaults(t *testing.T) {
	orders := stores.NewOrderStore(newState(t), nil, nil)

	o := orders.AddOrder(domain.Order{CustomerName: "Ama Mensah", TotalAmount: 110})

	require.NotEmpty(t, o.ID)
	require.True(t, strings.HasPrefix(o.OrderNumber, "ORD-"), "number %q", o.OrderNumber)
	require.Len(t, o.OrderNumber, 10)
	require.Equal(t, domain.OrderPending, o.Status)
	require.False(t, o.CreatedAt.IsZero())
}

func TestOrderAddUnknownStatusLandsPending(t *testing.T) {
	orders := stores.NewOrderStore(newState(t), nil, nil)

	o := orders.AddOrder(domain.Order{Status: domain.OrderStatus("Shipped")})
	require.Equal(t, domain.OrderPending, o.Status)

	// a caller-supplied valid status is kept as-is
	o = orders.AddOrder(domain.Order{Status: domain.OrderCompleted})
	require.Equal(t, domain.OrderCompleted, o.Status)
}

func TestOrderNumberFormat(t *testing.T) {
	ts := time.UnixMilli(1_723_456_789_123)
	require.Equal(t, "ORD-789123", stores.NewOrderNumber(ts))

	// low remainders are zero-padded
	require.Equal(t, "ORD-000042", stores.NewOrderNumber(time.UnixMilli(42)))
}

func TestOrderStatusTransitions(t *testing.T) {
	orders := stores.NewOrderStore(newState(t), nil, nil)
	o := orders.AddOrder(domain.Order{CustomerName: "A"})

	// any state can move to any other state
	updated, err := orders.UpdateStatus(o.ID, domain.OrderCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.OrderCompleted, updated.Status)

	updated, err = orders.UpdateStatus(o.ID, domain.OrderPending)
	require.NoError(t, err)
	require.Equal(t, domain.OrderPending, updated.Status)

	_, err = orders.UpdateStatus(o.ID, domain.OrderStatus("Shipped"))
	require.ErrorIs(t, err, stores.ErrInvalidStatus)

	got, _ := orders.Get(o.ID)
	require.Equal(t, domain.OrderPending, got.Status) // rejected update left it alone
}

func TestOrderNotificationsOnAddAndStatusChange(t *testing.T) {
	var got []domain.Notification
	orders := stores.NewOrderStore(newState(t), nil, func(n domain.Notification) { got = append(got, n) })

	o := orders.AddOrder(domain.Order{CustomerName: "Ama", TotalAmount: 55})
	require.Len(t, got, 1)
	require.Equal(t, "order_created", got[0].Type)
	require.Contains(t, got[0].Message, o.OrderNumber)

	_, err := orders.UpdateStatus(o.ID, domain.OrderCompleted)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "order_status", got[1].Type)
	require.Contains(t, got[1].Message, "Completed")

	// same status again is not a change
	_, err = orders.UpdateStatus(o.ID, domain.OrderCompleted)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestOrderUpdatePartial(t *testing.T) {
	orders := stores.NewOrderStore(newState(t), nil, nil)
	o := orders.AddOrder(domain.Order{CustomerName: "Before", CustomerEmail: "a@b.com"})

	name := "After"
	updated, err := orders.UpdateOrder(o.ID, stores.OrderUpdate{CustomerName: &name})
	require.NoError(t, err)
	require.Equal(t, "After", updated.CustomerName)
	require.Equal(t, "a@b.com", updated.CustomerEmail)

	_, err = orders.UpdateOrder("missing", stores.OrderUpdate{CustomerName: &name})
	require.Error(t, err)
}

func TestOrderDelete(t *testing.T) {
	orders := stores.NewOrderStore(newState(t), nil, nil)
	o := orders.AddOrder(domain.Order{CustomerName: "A"})

	require.True(t, orders.DeleteOrder(o.ID))
	require.False(t, orders.DeleteOrder(o.ID))
	_, found := orders.Get(o.ID)
	require.False(t, found)
}

func TestOrdersNewestFirst(t *testing.T) {
	orders := stores.NewOrderStore(newState(t), nil, nil)
	a := orders.AddOrder(domain.Order{CustomerName: "first"})
	time.Sleep(2 * time.Millisecond)
	b := orders.AddOrder(domain.Order{CustomerName: "second"})
	_ = a

	list := orders.Orders()
	require.Len(t, list, 2)
	require.Equal(t, b.ID, list[0].ID)
}

func TestOrderCountByStatus(t *testing.T) {
	orders := stores.NewOrderStore(newState(t), nil, nil)
	orders.AddOrder(domain.Order{})
	o := orders.AddOrder(domain.Order{})
	_, err := orders.UpdateStatus(o.ID, domain.OrderFailed)
	require.NoError(t, err)

	counts := orders.CountByStatus()
	require.Equal(t, 1, counts[domain.OrderPending])
	require.Equal(t, 1, counts[domain.OrderFailed])
	require.Equal(t, 0, counts[domain.OrderCompleted])
}
