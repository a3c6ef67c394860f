package services

import (
	"errors"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"luxeshop/internal/domain"
	"luxeshop/internal/stores"
)

// TaxRate is applied to the cart subtotal at checkout time.
const TaxRate = 0.10

var (
	ErrCartEmpty   = errors.New("cart is empty")
	ErrInvalidForm = errors.New("invalid checkout form")
)

type CheckoutForm struct {
	FirstName string `validate:"required,max=40"`
	LastName  string `validate:"required,max=40"`
	Email     string `validate:"required,email,max=60"`
	Address   string `validate:"required,max=120"`
	City      string `validate:"required,max=60"`
	Zip       string `validate:"required,len=5,numeric"`
}

// CheckoutService is the one place where several stores compose. The
// steps are not transactional: an order can exist without its cart
// having been cleared if a later step fails.
type CheckoutService struct {
	Cart     *stores.CartStore
	Orders   *stores.OrderStore
	validate *validator.Validate
}

func NewCheckoutService(cart *stores.CartStore, orders *stores.OrderStore) *CheckoutService {
	return &CheckoutService{Cart: cart, Orders: orders, validate: validator.New()}
}

// Place validates the shopper's fields, snapshots the cart into a new
// Pending order, and clears the cart last. Field-level problems come
// back in the map alongside ErrInvalidForm.
func (s *CheckoutService) Place(form CheckoutForm) (domain.Order, map[string]string, error) {
	if err := s.validate.Struct(form); err != nil {
		fieldErrs := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fieldErrs[fe.Field()] = fieldMessage(fe)
			}
			return domain.Order{}, fieldErrs, ErrInvalidForm
		}
		return domain.Order{}, nil, err
	}

	items := s.Cart.Items()
	if len(items) == 0 {
		return domain.Order{}, nil, ErrCartEmpty
	}

	subtotal := s.Cart.Total()
	total := round2(subtotal * (1 + TaxRate))

	snapshot := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		snapshot = append(snapshot, domain.OrderItem{
			ProductID:   it.ID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	order := s.Orders.AddOrder(domain.Order{
		OrderNumber:   stores.NewOrderNumber(time.Now()),
		CustomerName:  form.FirstName + " " + form.LastName,
		CustomerEmail: form.Email,
		Address:       form.Address,
		City:          form.City,
		Zip:           form.Zip,
		TotalAmount:   total,
		Status:        domain.OrderPending,
		Items:         snapshot,
	})

	// Clearing last keeps the cart intact if order creation panics.
	s.Cart.Clear()

	return order, nil, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "len", "numeric":
		return "Enter a valid 5-digit ZIP code"
	case "max":
		return "Too long"
	}
	return "Invalid value"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
