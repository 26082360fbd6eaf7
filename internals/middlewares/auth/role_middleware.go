package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "gospelmedia_backend/internals/helpers"
)

// OnlyRoles gates a route on the caller's user_type claim.
func OnlyRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType := helper.UserType(c)
		for _, allowed := range roles {
			if userType == allowed {
				return c.Next()
			}
		}
		return helper.Unauthorized(c)
	}
}
