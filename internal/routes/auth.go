package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shopfront/shopfront/internal/auth"
	"github.com/shopfront/shopfront/internal/identity"
)

// RegisterAuthRoutes wires login and account creation.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, ids *identity.Handler, idempotent fiber.Handler) {
	r.Post("/login", h.Login)
	r.Post("/register", idempotent, ids.Register)
}
