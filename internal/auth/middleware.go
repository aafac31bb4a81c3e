package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-service/internal/domain"
	apperrors "github.com/spec-kit/jobboard-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Identity domain.Identity
}

// AuthMiddleware validates cookie tokens and loads principals.
type AuthMiddleware struct {
	tokens     *TokenManager
	cookieName string
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, cookieName string) *AuthMiddleware {
	if cookieName == "" {
		cookieName = "token"
	}
	return &AuthMiddleware{tokens: tokens, cookieName: cookieName}
}

// Handle enforces authentication for protected routes. A missing cookie is
// unauthorized (401); a cookie that fails signature or expiry checks is
// forbidden (403). The distinction is part of the API contract.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(m.cookieName)
	if token == "" {
		return apperrors.NewUnauthorized("Unauthorized access")
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return apperrors.NewForbidden("Forbidden access")
	}

	c.Locals(principalKey, principalFromClaims(claims))
	return c.Next()
}

// HandleOptional attaches a principal when a valid cookie is present and
// otherwise lets the request continue anonymously. Used for routes whose
// protection is configurable.
func (m *AuthMiddleware) HandleOptional(c *fiber.Ctx) error {
	token := c.Cookies(m.cookieName)
	if token == "" {
		return c.Next()
	}
	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return c.Next()
	}
	c.Locals(principalKey, principalFromClaims(claims))
	return c.Next()
}

func principalFromClaims(claims *Claims) *Principal {
	principal := &Principal{Identity: domain.Identity{Email: claims.Email}}
	if claims.IssuedAt != nil {
		principal.Identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		principal.Identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return principal
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
