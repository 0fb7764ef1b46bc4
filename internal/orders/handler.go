package orders

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shopfront/shopfront/internal/middleware"
)

// Handler exposes order HTTP endpoints. Routes must sit behind middleware.Authenticate.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler builds an order HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List returns the caller's orders.
func (h *Handler) List(c *fiber.Ctx) error {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "Unauthorized")
	}
	list, err := h.service.Orders(c.UserContext(), id.UserID)
	if err != nil {
		return h.fail(err, ErrNoOrders, "No orders found")
	}
	return c.Status(http.StatusOK).JSON(list)
}

// Items returns the product lines of the caller's orders.
func (h *Handler) Items(c *fiber.Ctx) error {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "Unauthorized")
	}
	list, err := h.service.Items(c.UserContext(), id.UserID)
	if err != nil {
		return h.fail(err, ErrNoItems, "No product references found for the user")
	}
	return c.Status(http.StatusOK).JSON(list)
}

func (h *Handler) fail(err, empty error, emptyMsg string) error {
	if errors.Is(err, empty) {
		return fiber.NewError(http.StatusNotFound, emptyMsg)
	}
	h.logger.Error("orders query failed", slog.Any("error", err))
	return fiber.NewError(http.StatusInternalServerError, "Internal server error")
}
