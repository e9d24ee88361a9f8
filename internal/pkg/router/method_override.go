package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MethodOverride lets HTML-form clients tunnel PUT/PATCH/DELETE through
// POST, via the _method form field or the X-HTTP-Method-Override header.
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost && c.Locals("methodOverridden") == nil {
			m := strings.ToUpper(c.FormValue("_method"))
			if m == "" {
				m = strings.ToUpper(c.Get("X-HTTP-Method-Override"))
			}
			switch m {
			case fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
				c.Locals("methodOverridden", true)
				c.Method(m)
				return c.RestartRouting()
			}
		}
		return c.Next()
	}
}
