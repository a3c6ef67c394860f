package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"luxeshop/internal/domain"
	applog "luxeshop/internal/log"
	"luxeshop/internal/stores"
	"luxeshop/internal/validate"
)

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	orders := h.Orders.Orders()
	status := strings.TrimSpace(c.Query("status"))
	if status != "" {
		filtered := orders[:0:0]
		for _, o := range orders {
			if strings.EqualFold(string(o.Status), status) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	return render(c, "admin_orders", fiber.Map{
		"Orders":      orders,
		"Status":      status,
		"Statuses":    domain.OrderStatuses,
		"UnreadCount": h.Notifications.UnreadCount(),
	})
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("bad order id")
	}
	status := domain.OrderStatus(c.FormValue("status"))
	order, err := h.Orders.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, stores.ErrInvalidStatus) {
			applog.Security(c, "admin.orders.status.invalid", map[string]any{"order_id": id, "status": string(status)})
			return c.Status(fiber.StatusBadRequest).SendString("invalid order status")
		}
		applog.Error(c, "admin.orders.status.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	applog.Audit(c, "admin.orders.status", map[string]any{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       string(order.Status),
	})
	return c.Redirect("/admin/orders")
}

// POST /admin/orders/:id/delete
func (h *AdminHandler) DeleteOrder(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("bad order id")
	}
	if !h.Orders.DeleteOrder(id) {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	applog.Audit(c, "admin.orders.delete", map[string]any{"order_id": id})
	return c.Redirect("/admin/orders")
}
