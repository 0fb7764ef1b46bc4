package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the login endpoint.
type Handler struct {
	svc      *Service
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, validate: validator.New(validator.WithRequiredStructEnabled()), logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message   string   `json:"message"`
	Token     string   `json:"token"`
	ExpiresIn int64    `json:"expires_in"`
	User      Identity `json:"user"`
}

// Login validates credentials and returns a signed token with the echoed claims.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Body is invalid json")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Required fields missing")
	}

	session, err := h.svc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "Invalid email or password")
		}
		if !errors.Is(err, ErrBackendUnavailable) {
			h.logger.Error("auth.login failed", slog.Any("error", err))
		}
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusOK).JSON(loginResponse{
		Message:   "Login successful",
		Token:     session.Token,
		ExpiresIn: int64(time.Until(session.ExpiresAt).Seconds()),
		User:      session.Identity,
	})
}
