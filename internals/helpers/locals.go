package helper

import "github.com/gofiber/fiber/v2"

// Identity claims stored in Locals by the auth middleware.

func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_id").(string); ok {
		return v
	}
	return ""
}

func TenantID(c *fiber.Ctx) string {
	if v, ok := c.Locals("tenant_id").(string); ok {
		return v
	}
	return ""
}

func UserType(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_type").(string); ok {
		return v
	}
	return ""
}
