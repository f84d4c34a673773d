package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/lokamarket/auth-service/internal/auth/handler"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(ctrl)
	app := fiber.New()
	handler.RegisterRoutes(app, f.handler)

	want := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/register"},
		{"POST", "/api/v1/login"},
		{"POST", "/api/v1/refresh"},
		{"DELETE", "/api/v1/session"},
		{"DELETE", "/api/v1/admin/user/:id/sessions"},
		{"GET", "/api/v1/admin/users"},
		{"PATCH", "/api/v1/admin/user/:id/role"},
		{"GET", "/api/v1/admin/user/:id/sessions"},
	}

	registered := make(map[string]bool)
	for _, r := range app.GetRoutes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, w := range want {
		assert.True(t, registered[w.method+" "+w.path], "missing route %s %s", w.method, w.path)
	}
}
