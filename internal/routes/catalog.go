package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shopfront/shopfront/internal/catalog"
)

// RegisterCatalogRoutes wires the public product listing.
func RegisterCatalogRoutes(r fiber.Router, h *catalog.Handler) {
	r.Get("/products", h.List)
}
