package auth

import (
	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie set on login.
const CookieName = "admin-auth"

// RequireAdmin rejects requests without a valid session cookie with 401.
func RequireAdmin(verifier SessionVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !verifier.VerifySession(c.UserContext(), c.Cookies(CookieName)) {
			return fiber.NewError(fiber.StatusUnauthorized, ErrUnauthorized.Error())
		}

		return c.Next()
	}
}
