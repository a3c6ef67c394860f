package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "luxeshop/internal/log"
	"luxeshop/internal/validate"
)

// GET /admin/notifications
func (h *AdminHandler) NotificationsPage(c *fiber.Ctx) error {
	notifs := h.Notifications.Notifications()
	filter := c.Query("filter")
	switch filter {
	case "unread":
		kept := notifs[:0:0]
		for _, n := range notifs {
			if !n.Read {
				kept = append(kept, n)
			}
		}
		notifs = kept
	case "read":
		kept := notifs[:0:0]
		for _, n := range notifs {
			if n.Read {
				kept = append(kept, n)
			}
		}
		notifs = kept
	}
	return render(c, "admin_notifications", fiber.Map{
		"Notifications": notifs,
		"Filter":        filter,
		"UnreadCount":   h.Notifications.UnreadCount(),
	})
}

// POST /admin/notifications/:id/read
func (h *AdminHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("bad notification id")
	}
	if !h.Notifications.MarkRead(id) {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Notification not found"})
	}
	return c.Redirect("/admin/notifications")
}

// POST /admin/notifications/read-all
func (h *AdminHandler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	h.Notifications.MarkAllRead()
	applog.Audit(c, "admin.notifications.read_all", nil)
	return c.Redirect("/admin/notifications")
}
