package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"luxeshop/internal/domain"
	applog "luxeshop/internal/log"
	"luxeshop/internal/stores"
	"luxeshop/internal/validate"
)

type ShopHandler struct {
	Catalog *stores.CatalogStore
	Theme   *stores.ThemeStore
	Cart    *stores.CartStore
}

// Home renders the landing page with the derived category list.
func (h *ShopHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Categories": h.Catalog.Categories(),
		"Theme":      h.Theme.Active(),
		"CartCount":  h.Cart.ItemCount(),
	})
}

// Shop lists products, optionally narrowed by ?category= and ?q=.
func (h *ShopHandler) Shop(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	rawQ := strings.TrimSpace(c.Query("q"))

	narrowed := category != "" && !strings.EqualFold(category, "All")

	var products []domain.Product
	if rawQ != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
			return c.Status(fiber.StatusBadRequest).Render("shop", fiber.Map{
				"Products": []any{}, "Categories": h.Catalog.Categories(),
				"Theme": h.Theme.Active(), "CartCount": h.Cart.ItemCount(),
				"Category": category, "Q": "",
				"Err": "Enter a valid keyword (letters/numbers only)",
			})
		}
		products = h.Catalog.SearchProducts(q)
		if narrowed {
			filtered := products[:0:0]
			for _, p := range products {
				if strings.EqualFold(p.Category, category) {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}
	} else if narrowed {
		products = h.Catalog.ProductsByCategory(category)
	} else {
		products = h.Catalog.Products()
	}

	return render(c, "shop", fiber.Map{
		"Products":   products,
		"Categories": h.Catalog.Categories(),
		"Category":   category,
		"Q":          rawQ,
		"Theme":      h.Theme.Active(),
		"CartCount":  h.Cart.ItemCount(),
	})
}
