package handler_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/lokamarket/auth-service/internal/auth/service"
	"github.com/lokamarket/auth-service/pkg/constant"
	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(ctrl)

	app := fiber.New()
	app.Get("/admin-only", f.handler.RequireRole(constant.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	get := func(authHeader string) int {
		req := httptest.NewRequest("GET", "/admin-only", nil)
		if authHeader != "" {
			req.Header.Set(fiber.HeaderAuthorization, authHeader)
		}
		resp, _ := app.Test(req, -1)
		return resp.StatusCode
	}

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, get(""))
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, get("Basic abc123"))
	})

	t.Run("invalid token", func(t *testing.T) {
		f.tokens.EXPECT().Verify("bad-token").Return(nil, errors.New("token is invalid"))

		assert.Equal(t, fiber.StatusUnauthorized, get("Bearer bad-token"))
	})

	t.Run("wrong role", func(t *testing.T) {
		f.tokens.EXPECT().Verify("user-token").Return(&service.JWTCustomClaims{
			UserID: "user-123",
			Role:   constant.RoleUser,
		}, nil)

		assert.Equal(t, fiber.StatusForbidden, get("Bearer user-token"))
	})

	t.Run("admin passes", func(t *testing.T) {
		f.tokens.EXPECT().Verify("admin-token").Return(&service.JWTCustomClaims{
			UserID: "admin-1",
			Role:   constant.RoleAdmin,
		}, nil)

		assert.Equal(t, fiber.StatusOK, get("Bearer admin-token"))
	})
}
