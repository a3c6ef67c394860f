package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "luxeshop/internal/log"
	"luxeshop/internal/stores"
)

// GET /admin/categories
func (h *AdminHandler) CategoriesPage(c *fiber.Ctx) error {
	return render(c, "admin_categories", fiber.Map{
		"Categories":  h.Catalog.Categories(),
		"UnreadCount": h.Notifications.UnreadCount(),
	})
}

// POST /admin/categories
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if err := h.Catalog.AddCategory(name); err != nil {
		applog.Security(c, "admin.categories.create.fail", map[string]any{"name": name, "error": err.Error()})
		c.Status(fiber.StatusBadRequest)
		return render(c, "admin_categories", fiber.Map{
			"Categories":  h.Catalog.Categories(),
			"UnreadCount": h.Notifications.UnreadCount(),
			"Err":         err.Error(),
		})
	}
	applog.Audit(c, "admin.categories.create", map[string]any{"name": name})
	return c.Redirect("/admin/categories")
}

// POST /admin/categories/delete
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if err := h.Catalog.DeleteCategory(name); err != nil {
		if errors.Is(err, stores.ErrCategoryInUse) {
			applog.Security(c, "admin.categories.delete.blocked", map[string]any{"name": name})
			c.Status(fiber.StatusBadRequest)
			return render(c, "admin_categories", fiber.Map{
				"Categories":  h.Catalog.Categories(),
				"UnreadCount": h.Notifications.UnreadCount(),
				"Err":         "Cannot delete a category that still has products. Move or delete them first.",
			})
		}
		applog.Error(c, "admin.categories.delete.fail", err, map[string]any{"name": name})
		return c.Status(fiber.StatusBadRequest).SendString("could not delete category")
	}
	applog.Audit(c, "admin.categories.delete", map[string]any{"name": name})
	return c.Redirect("/admin/categories")
}
