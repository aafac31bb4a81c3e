package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-service/internal/api/dto"
	"github.com/spec-kit/jobboard-service/internal/auth"
	apperrors "github.com/spec-kit/jobboard-service/pkg/util"
)

// AuthHandler issues and clears the identity cookie.
type AuthHandler struct {
	tokens *auth.TokenManager
	cookie *auth.CookieWriter
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens *auth.TokenManager, cookie *auth.CookieWriter) *AuthHandler {
	return &AuthHandler{tokens: tokens, cookie: cookie}
}

// IssueToken handles POST /jwt. The body carries the caller's identity
// claims; the signed token travels back in an HTTP-only cookie, never in the
// response body.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	token, expiresAt, err := h.tokens.GenerateToken(req.Email)
	if err != nil {
		return err
	}

	h.cookie.Write(c, token, expiresAt)
	return c.JSON(fiber.Map{"success": true})
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookie.Clear(c)
	return c.JSON(fiber.Map{"success": true})
}
