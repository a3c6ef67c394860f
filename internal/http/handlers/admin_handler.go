package handlers

import (
	"github.com/gofiber/fiber/v2"

	"luxeshop/internal/domain"
	"luxeshop/internal/stores"
)

type AdminHandler struct {
	Catalog       *stores.CatalogStore
	Orders        *stores.OrderStore
	Notifications *stores.NotificationStore
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	counts := h.Orders.CountByStatus()
	return render(c, "admin_dashboard", fiber.Map{
		"ProductCount":    len(h.Catalog.Products()),
		"CategoryCount":   len(h.Catalog.Categories()),
		"PendingOrders":   counts[domain.OrderPending],
		"CompletedOrders": counts[domain.OrderCompleted],
		"FailedOrders":    counts[domain.OrderFailed],
		"UnreadCount":     h.Notifications.UnreadCount(),
	})
}
