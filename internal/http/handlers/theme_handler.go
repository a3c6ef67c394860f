package handlers

import (
	"github.com/gofiber/fiber/v2"

	"luxeshop/internal/domain"
	"luxeshop/internal/stores"
)

type ThemeHandler struct {
	Theme *stores.ThemeStore
}

// Set switches the active category; an unknown category is ignored
// rather than erroring (the resolver falls back to the default
// palette anyway).
func (h *ThemeHandler) Set(c *fiber.Ctx) error {
	if cat := c.FormValue("category"); cat != "" {
		if _, ok := domain.CategoryThemes[cat]; ok {
			h.Theme.SetCategory(cat)
		}
	}
	switch preview := c.FormValue("preview"); preview {
	case "":
		// no preview field: leave as-is
	case "clear":
		h.Theme.ClearPreview()
	default:
		if _, ok := domain.CategoryThemes[preview]; ok {
			h.Theme.SetPreview(preview)
		}
	}
	ref := c.Get("Referer")
	if ref == "" {
		ref = "/"
	}
	return c.Redirect(ref)
}
