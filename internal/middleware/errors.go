package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler renders handler errors as {"error": message}. Errors that are
// not *fiber.Error become a generic 500 so internal detail never leaks.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			logger.Error("unhandled error", slog.String("path", c.Path()), slog.Any("error", err))
			fe = fiber.NewError(fiber.StatusInternalServerError, internalErrorMessage)
		}
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
}

// statusOf returns the status the client will receive once err has been
// rendered by ErrorHandler.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
