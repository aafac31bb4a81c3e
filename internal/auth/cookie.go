package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieWriter sets and clears the identity cookie. The cookie is HTTP-only
// so page scripts cannot read it; Secure is off by default for localhost
// development and switched on via AUTH_COOKIE_SECURE.
type CookieWriter struct {
	name   string
	secure bool
}

// NewCookieWriter builds a writer for the configured cookie.
func NewCookieWriter(name string, secure bool) *CookieWriter {
	if name == "" {
		name = "token"
	}
	return &CookieWriter{name: name, secure: secure}
}

// Name returns the cookie name the middleware should read.
func (w *CookieWriter) Name() string {
	return w.name
}

// Write attaches the signed token to the response.
func (w *CookieWriter) Write(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     w.name,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   w.secure,
		Path:     "/",
	})
}

// Clear expires the cookie. Clearing is purely client-side; an unexpired
// token replayed manually remains cryptographically valid.
func (w *CookieWriter) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     w.name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   w.secure,
		Path:     "/",
	})
}
