package server

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopfront/shopfront/internal/config"
	"github.com/shopfront/shopfront/internal/logging"
)

func TestFormRegistrationsKeepStoredEmail(t *testing.T) {
	srv, err := New(config.Config{
		AppName:     "shopfront-test",
		Env:         "development",
		JWTSecret:   "server-secret",
		CORSOrigins: "http://localhost:5173",
		TokenTTL:    time.Hour,
		BcryptCost:  bcrypt.MinCost,
	}, nil, nil, logging.Discard())
	require.NoError(t, err)

	for _, email := range []string{"ada@x.com", "bob@x.com", "cy@x.com", "dee@x.com"} {
		form := url.Values{"email": {email}, "password": {"long-enough-secret"}, "firstname": {"F"}}
		req := httptest.NewRequest(fiber.MethodPost, "/api/register", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		resp, err := srv.app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, fiber.StatusCreated, resp.StatusCode, email)
	}

	req := httptest.NewRequest(fiber.MethodPost, "/api/login",
		strings.NewReader(`{"email":"ada@x.com","password":"long-enough-secret"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := srv.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
