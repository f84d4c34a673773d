package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireRole guards a route group behind a verified access token carrying
// the given role.
func (h *AuthHandler) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c)
		}

		claims, err := h.tokenService.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return unauthorized(c)
		}

		if claims.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
