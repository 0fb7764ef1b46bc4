package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/shopfront/internal/auth"
	"github.com/shopfront/shopfront/internal/logging"
)

func setupProtectedApp(t *testing.T, tokens *auth.TokenIssuer) (*fiber.App, *bool) {
	t.Helper()
	reached := false
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Discard())})
	app.Use(RequestID())
	app.Get("/me", Authenticate(tokens), func(c *fiber.Ctx) error {
		reached = true
		id, ok := CurrentIdentity(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(id)
	})
	return app, &reached
}

func TestAuthenticateOutcomes(t *testing.T) {
	tokens := auth.NewTokenIssuer("mw-secret", time.Hour)
	expiredIssuer := auth.NewTokenIssuer("mw-secret", -time.Minute)

	valid, _, err := tokens.Issue(auth.Identity{UserID: 5, Email: "a@x.com"})
	require.NoError(t, err)
	expired, _, err := expiredIssuer.Issue(auth.Identity{UserID: 5})
	require.NoError(t, err)

	cases := []struct {
		name    string
		header  string
		status  int
		reached bool
	}{
		{"no header", "", fiber.StatusUnauthorized, false},
		{"no token", "Bearer", fiber.StatusUnauthorized, false},
		{"expired token", "Bearer " + expired, fiber.StatusForbidden, false},
		{"garbage token", "Bearer abc.def.ghi", fiber.StatusForbidden, false},
		{"valid token", "Bearer " + valid, fiber.StatusOK, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, reached := setupProtectedApp(t, tokens)
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.reached, *reached)
			assert.NotEmpty(t, resp.Header.Get(requestIDHeader))

			if tc.reached {
				var id auth.Identity
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&id))
				assert.Equal(t, int64(5), id.UserID)
			}
		})
	}
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Discard())})
	app.Use(Metrics())
	app.Get("/boom", func(*fiber.Ctx) error {
		return assert.AnError
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, internalErrorMessage, body["error"])
}
