package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "luxeshop/internal/log"
	"luxeshop/internal/stores"
	"luxeshop/internal/validate"
)

type ProductHandler struct {
	Catalog *stores.CatalogStore
	Theme   *stores.ThemeStore
	Cart    *stores.CartStore
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, found := h.Catalog.GetProduct(id)
	if !found {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{
		"P":         p,
		"Theme":     h.Theme.Active(),
		"CartCount": h.Cart.ItemCount(),
	})
}
