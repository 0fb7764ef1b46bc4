package routes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shopfront/shopfront/internal/identity"
	"github.com/shopfront/shopfront/internal/middleware"
)

// RegisterAccountRoutes exposes the caller's own profile. r must already
// enforce middleware.Authenticate.
func RegisterAccountRoutes(r fiber.Router, ids *identity.Service, logger *slog.Logger, idempotent fiber.Handler) {
	r.Get("/user", func(c *fiber.Ctx) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "Unauthorized")
		}
		profile, err := ids.Profile(c.UserContext(), id.UserID)
		if err != nil {
			if errors.Is(err, identity.ErrNotFound) {
				return fiber.NewError(http.StatusNotFound, "User not found")
			}
			logger.Error("account.profile failed", slog.Int64("user_id", id.UserID), slog.Any("error", err))
			return fiber.NewError(http.StatusInternalServerError, "Internal server error")
		}
		return c.Status(http.StatusOK).JSON(profile)
	})

	r.Put("/user", idempotent, func(c *fiber.Ctx) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "Unauthorized")
		}
		var upd identity.ProfileUpdate
		if err := c.BodyParser(&upd); err != nil {
			return fiber.NewError(http.StatusBadRequest, "Body is invalid json")
		}

		err := ids.UpdateProfile(c.UserContext(), id.UserID, upd)
		switch {
		case err == nil:
		case errors.Is(err, identity.ErrNoFieldsProvided):
			return fiber.NewError(http.StatusBadRequest, "No fields provided for update")
		case errors.Is(err, identity.ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "User not found")
		case errors.Is(err, identity.ErrEmailTaken):
			return fiber.NewError(http.StatusConflict, "Email already registered")
		default:
			logger.Error("account.update failed", slog.Int64("user_id", id.UserID), slog.Any("error", err))
			return fiber.NewError(http.StatusInternalServerError, "Internal server error")
		}

		logger.Info("account.update completed", slog.Int64("user_id", id.UserID))
		return c.Status(http.StatusOK).JSON(fiber.Map{"message": "User info updated successfully"})
	})
}
