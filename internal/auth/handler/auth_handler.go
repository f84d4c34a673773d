package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lokamarket/auth-service/internal/auth/dto"
	"github.com/lokamarket/auth-service/internal/auth/service"
	autherror "github.com/lokamarket/auth-service/internal/errors"
)

var validate = validator.New()

type AuthHandler struct {
	authService  *service.AuthService
	tokenService service.TokenIssuer
}

func NewAuthHandler(authService *service.AuthService, tokenService service.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	// Capture metadata
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())
	input.Fingerprint = c.Get("X-Device-Fingerprint")

	session, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrTooManyLoginAttempts) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many attempts",
			})
		}
		return unauthorized(c)
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.Fingerprint = c.Get("X-Device-Fingerprint")
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	session, err := h.authService.Refresh(c.Context(), input)
	if err != nil {
		return unauthorized(c)
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

// Logout never reveals whether the presented token was valid.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.LogoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	h.authService.Logout(c.Context(), input)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) ForceLogout(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := h.authService.ForceLogout(c.Context(), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to revoke sessions"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "sessions revoked"})
}

func (h *AuthHandler) GetUserSessions(c *fiber.Ctx) error {
	sessions, err := h.authService.GetUserSessions(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list sessions"})
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}

func (h *AuthHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.authService.GetAllUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list users"})
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

func (h *AuthHandler) UpdateUserRole(c *fiber.Ctx) error {
	var input dto.UpdateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.authService.UpdateUserRole(c.Context(), c.Params("id"), input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update role"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "role updated"})
}

// All auth failure kinds collapse into one response; the detailed kind stays
// in the logs.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}
