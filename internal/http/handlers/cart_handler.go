package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "luxeshop/internal/log"
	"luxeshop/internal/stores"
	"luxeshop/internal/validate"
)

type CartHandler struct {
	Cart    *stores.CartStore
	Catalog *stores.CatalogStore
	Theme   *stores.ThemeStore
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	return render(c, "cart", fiber.Map{
		"Items":     h.Cart.Items(),
		"Total":     h.Cart.Total(),
		"Count":     h.Cart.ItemCount(),
		"IsOpen":    h.Cart.IsOpen(),
		"Theme":     h.Theme.Active(),
		"CartCount": h.Cart.ItemCount(),
	})
}

// Add looks the product up in the catalog and merges it into the cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	p, found := h.Catalog.GetProduct(id)
	if !found {
		applog.Security(c, "cart.add.unknown_product", map[string]any{"product_id": id})
		return c.Status(404).SendString("product not found")
	}
	h.Cart.AddItem(p)
	applog.Info(c, "cart.add", map[string]any{"product_id": id})
	return c.Redirect("/cart")
}

// UpdateQuantity sets the exact quantity; zero or negative removes.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	h.Cart.UpdateQuantity(id, validate.Qty(c.FormValue("qty")))
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	h.Cart.RemoveItem(id)
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.Clear()
	return c.Redirect("/cart")
}

// Toggle flips the slide-over panel flag; data is untouched.
func (h *CartHandler) Toggle(c *fiber.Ctx) error {
	h.Cart.ToggleCart()
	ref := c.Get("Referer")
	if ref == "" {
		ref = "/shop"
	}
	return c.Redirect(ref)
}
