package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/shopfront/shopfront/internal/auth"
)

const identityLocalsKey = "identity"

// Authenticate rejects requests without a valid bearer token and exposes the
// decoded identity to later handlers. A missing token yields 401, an invalid
// or expired one 403.
func Authenticate(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := tokens.Authorize(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			status := http.StatusForbidden
			if errors.Is(err, auth.ErrMissingCredential) {
				status = http.StatusUnauthorized
			}
			authRejectionsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
			return fiber.NewError(status, http.StatusText(status))
		}

		c.Locals(identityLocalsKey, id)
		return c.Next()
	}
}

// CurrentIdentity returns the identity stored by Authenticate.
func CurrentIdentity(c *fiber.Ctx) (auth.Identity, bool) {
	id, ok := c.Locals(identityLocalsKey).(auth.Identity)
	return id, ok
}
