package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrdesk/internal/api/dto"
	"github.com/spec-kit/hrdesk/internal/auth"
	"github.com/spec-kit/hrdesk/internal/service"
	apperrors "github.com/spec-kit/hrdesk/pkg/util"
)

// AuthHandler exposes the roster login and logout endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	greeting string
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, greeting string) *AuthHandler {
	return &AuthHandler{auth: authService, greeting: greeting}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	sess, token, exp, err := h.auth.Login(c.UserContext(), req.Name, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.LoginResponse{
			SessionID:  sess.ID,
			Name:       sess.Employee.Name,
			Department: sess.Employee.Department,
			Rank:       sess.Employee.Rank,
			Greeting:   h.greeting,
			Auth:       dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}
	if err := h.auth.Logout(c.UserContext(), sess.ID); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}
