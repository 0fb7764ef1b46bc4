package catalog

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the public product listing.
type Handler struct {
	repo   Repository
	logger *slog.Logger
}

func NewHandler(repo Repository, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// List returns all products, or 404 when the catalogue is empty.
func (h *Handler) List(c *fiber.Ctx) error {
	products, err := h.repo.List(c.UserContext())
	if err != nil {
		h.logger.Error("catalog list failed", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}
	if len(products) == 0 {
		return fiber.NewError(http.StatusNotFound, "No products found")
	}
	return c.Status(http.StatusOK).JSON(products)
}
