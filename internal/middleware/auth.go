// Package middleware provides request middleware: token extraction and
// structured request logging.
package middleware

import (
	"strings"

	"inkpost/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// IdentityLocal is the fiber locals key holding the *auth.Identity.
const IdentityLocal = "identity"

// OptionalAuth extracts and verifies a bearer token on every request. It
// never rejects: absent, malformed, or invalid tokens leave the request
// unauthenticated and proceed; authorization decisions belong to the
// service layer.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}

		identity, err := auth.VerifyToken(parts[1], secret)
		if err != nil {
			// Failure is swallowed; the request simply stays anonymous.
			return c.Next()
		}

		c.Locals(IdentityLocal, identity)
		c.SetUserContext(auth.WithIdentity(c.UserContext(), identity))
		return c.Next()
	}
}

// Identity returns the authenticated identity for the request, or nil when
// the request is anonymous.
func Identity(c *fiber.Ctx) *auth.Identity {
	if id, ok := c.Locals(IdentityLocal).(*auth.Identity); ok {
		return id
	}
	return nil
}
