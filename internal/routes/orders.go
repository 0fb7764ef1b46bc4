package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shopfront/shopfront/internal/orders"
)

// RegisterOrderRoutes wires the caller's order history.
func RegisterOrderRoutes(r fiber.Router, h *orders.Handler) {
	r.Get("/orders", h.List)
	r.Get("/orderProducts", h.Items)
}
