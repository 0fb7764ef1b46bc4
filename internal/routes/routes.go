package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shopfront/shopfront/internal/auth"
	"github.com/shopfront/shopfront/internal/catalog"
	"github.com/shopfront/shopfront/internal/config"
	"github.com/shopfront/shopfront/internal/identity"
	"github.com/shopfront/shopfront/internal/middleware"
	"github.com/shopfront/shopfront/internal/orders"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.DB == nil && !d.Cfg.IsDev() {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.Env)
	}
	if d.Cfg.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Cfg.CORSOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete}, ","),
		AllowHeaders: strings.Join([]string{fiber.HeaderContentType, fiber.HeaderAuthorization}, ","),
	}))
	app.Use(middleware.Metrics())
	if d.Cfg.IsDev() {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	} else {
		app.Use(middleware.Audit(d.Logger))
	}

	RegisterHealthRoutes(app, d)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	var (
		identityRepo identity.Repository
		orderRepo    orders.Repository
		productRepo  catalog.Repository
	)
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
		orderRepo = orders.NewPostgresRepository(d.DB)
		productRepo = catalog.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
		orderRepo = orders.NewMemoryRepository()
		productRepo = catalog.NewMemoryRepository()
	}

	hasher := identity.NewPasswordHasher(d.Cfg.BcryptCost)
	identitySvc := identity.NewService(identityRepo, hasher, identity.NewProfileCache(d.Cache, d.Cfg.ProfileCacheTTL), d.Logger)
	tokens := auth.NewTokenIssuer(d.Cfg.JWTSecret, d.Cfg.TokenTTL)
	authSvc, err := auth.NewService(identityRepo, hasher, tokens, d.Logger)
	if err != nil {
		return err
	}

	idempotent := middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)

	api := app.Group("/api")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.GetRequestID(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	RegisterAuthRoutes(api, auth.NewHandler(authSvc, d.Logger), identity.NewHandler(identitySvc, d.Logger), idempotent)
	RegisterCatalogRoutes(api, catalog.NewHandler(productRepo, d.Logger))

	// Protected routes
	protected := api.Group("", middleware.Authenticate(tokens))
	RegisterAccountRoutes(protected, identitySvc, d.Logger, idempotent)
	RegisterOrderRoutes(protected, orders.NewHandler(orders.NewService(orderRepo), d.Logger))

	return nil
}
