package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopfront/shopfront/internal/config"
	"github.com/shopfront/shopfront/internal/logging"
	"github.com/shopfront/shopfront/internal/middleware"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	cfg := config.Config{
		AppName:         "shopfront-test",
		Env:             "development",
		JWTSecret:       "routes-secret",
		CORSOrigins:     "http://localhost:5173",
		TokenTTL:        time.Hour,
		ProfileCacheTTL: time.Minute,
		IdempotencyTTL:  time.Minute,
		BcryptCost:      bcrypt.MinCost,
	}
	logger := logging.Discard()
	app := fiber.New(fiber.Config{Immutable: true, ErrorHandler: middleware.ErrorHandler(logger)})
	require.NoError(t, Setup(app, Deps{Cfg: cfg, Cache: cache, Logger: logger}))
	return app
}

func call(t *testing.T, app *fiber.App, method, target, token, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded
}

func registerAndLogin(t *testing.T, app *fiber.App) (string, map[string]any) {
	t.Helper()
	status, _ := call(t, app, fiber.MethodPost, "/api/register", "",
		`{"email":"a@x.com","password":"s1-long-secret","firstname":"Ada","lastname":"Lovelace","address":"1 Old Rd","mobile":"0600000000"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := call(t, app, fiber.MethodPost, "/api/login", "", `{"email":"a@x.com","password":"s1-long-secret"}`)
	require.Equal(t, fiber.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token, body
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)
	token, body := registerAndLogin(t, app)

	assert.Equal(t, "Login successful", body["message"])
	user, _ := body["user"].(map[string]any)
	require.NotNil(t, user)
	assert.Equal(t, "Ada", user["firstname"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "mobile")

	_, wrong := call(t, app, fiber.MethodPost, "/api/login", "", `{"email":"a@x.com","password":"nope"}`)
	status, unknown := call(t, app, fiber.MethodPost, "/api/login", "", `{"email":"z@x.com","password":"nope"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, wrong, unknown)

	status, missingSecret := call(t, app, fiber.MethodPost, "/api/login", "", `{"email":"a@x.com"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, wrong, missingSecret)

	status, _ = call(t, app, fiber.MethodPost, "/api/login", "", `{"password":"s1-long-secret"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, profile := call(t, app, fiber.MethodGet, "/api/user", token, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, user["id"], profile["id"])
	assert.Equal(t, "0600000000", profile["mobile"])
}

func TestProtectedRoutesRejectBadCredentials(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/api/user", "/api/orders", "/api/orderProducts"} {
		status, _ := call(t, app, fiber.MethodGet, target, "", "")
		assert.Equal(t, fiber.StatusUnauthorized, status, target)

		status, _ = call(t, app, fiber.MethodGet, target, "not.a.token", "")
		assert.Equal(t, fiber.StatusForbidden, status, target)
	}

	status, _ := call(t, app, fiber.MethodPut, "/api/user", "", `{"address":"123 St"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestProfileUpdate(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerAndLogin(t, app)

	status, _ := call(t, app, fiber.MethodGet, "/api/user", token, "")
	require.Equal(t, fiber.StatusOK, status)

	status, body := call(t, app, fiber.MethodPut, "/api/user", token, `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No fields provided for update", body["error"])

	status, _ = call(t, app, fiber.MethodPut, "/api/user", token, `{"firstname":"","mobile":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = call(t, app, fiber.MethodPut, "/api/user", token, `{"address":"123 St"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "User info updated successfully", body["message"])

	status, profile := call(t, app, fiber.MethodGet, "/api/user", token, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "123 St", profile["address"])
	assert.Equal(t, "Ada", profile["firstname"])
}

func TestListingsWithoutData(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerAndLogin(t, app)

	status, body := call(t, app, fiber.MethodGet, "/api/orders", token, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "No orders found", body["error"])

	status, body = call(t, app, fiber.MethodGet, "/api/orderProducts", token, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "No product references found for the user", body["error"])

	status, body = call(t, app, fiber.MethodGet, "/api/products", "", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "No products found", body["error"])
}

func TestOperationalEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, body := call(t, app, fiber.MethodGet, "/healthz", "", "")
	require.Equal(t, fiber.StatusOK, status)
	stores, _ := body["status"].(map[string]any)
	assert.Equal(t, "disabled", stores["postgres"])
	assert.Equal(t, "ok", stores["redis"])

	status, body = call(t, app, fiber.MethodGet, "/api/ping", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["request_id"])

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "http_requests_total")
}

func TestSetupRequiresDatabaseOutsideDev(t *testing.T) {
	app := fiber.New()
	err := Setup(app, Deps{Cfg: config.Config{Env: "production", JWTSecret: "x"}, Logger: logging.Discard()})
	assert.Error(t, err)
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	app := newTestApp(t)

	body := `{"email":"long@x.com","password":"` + strings.Repeat("p", 80) + `"}`
	status, decoded := call(t, app, fiber.MethodPost, "/api/register", "", body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEqual(t, "Internal server error", decoded["error"])

	// 40 runes pass the length rule but exceed bcrypt's 72-byte limit.
	body = `{"email":"wide@x.com","password":"` + strings.Repeat("é", 40) + `"}`
	status, decoded = call(t, app, fiber.MethodPost, "/api/register", "", body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Password must be at most 72 bytes", decoded["error"])
}
