package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "luxeshop/internal/log"
	"luxeshop/internal/services"
	"luxeshop/internal/stores"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
	Cart     *stores.CartStore
	Orders   *stores.OrderStore
	Theme    *stores.ThemeStore
}

func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	subtotal := h.Cart.Total()
	return render(c, "checkout", fiber.Map{
		"Items":    h.Cart.Items(),
		"Subtotal": subtotal,
		"Tax":      subtotal * services.TaxRate,
		"Total":    subtotal * (1 + services.TaxRate),
		"Theme":    h.Theme.Active(),
	})
}

func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	form := services.CheckoutForm{
		FirstName: c.FormValue("firstName"),
		LastName:  c.FormValue("lastName"),
		Email:     c.FormValue("email"),
		Address:   c.FormValue("address"),
		City:      c.FormValue("city"),
		Zip:       c.FormValue("zip"),
	}

	order, fieldErrs, err := h.Checkout.Place(form)
	if err != nil {
		if errors.Is(err, services.ErrInvalidForm) {
			applog.Security(c, "checkout.validation.fail", map[string]any{"fields": len(fieldErrs)})
			subtotal := h.Cart.Total()
			c.Status(fiber.StatusBadRequest)
			return render(c, "checkout", fiber.Map{
				"Items":    h.Cart.Items(),
				"Subtotal": subtotal,
				"Tax":      subtotal * services.TaxRate,
				"Total":    subtotal * (1 + services.TaxRate),
				"Theme":    h.Theme.Active(),
				"Errors":   fieldErrs,
				"Form":     form,
			})
		}
		if errors.Is(err, services.ErrCartEmpty) {
			return c.Redirect("/cart")
		}
		applog.Error(c, "checkout.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Payment processing failed. Please try again.",
		})
	}

	applog.Audit(c, "order.place", map[string]any{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total":        order.TotalAmount,
	})
	return c.Redirect("/order/" + order.ID)
}

// Confirmation shows the order the shopper just placed.
func (h *CheckoutHandler) Confirmation(c *fiber.Ctx) error {
	o, found := h.Orders.Get(c.Params("id"))
	if !found {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "order", fiber.Map{"Order": o, "Theme": h.Theme.Active()})
}
