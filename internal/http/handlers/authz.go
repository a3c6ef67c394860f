package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "luxeshop/internal/log"
	"luxeshop/internal/services"
)

// RequireAdmin gates the back office on the session's role. This is an
// in-process convenience gate, not a security boundary.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
