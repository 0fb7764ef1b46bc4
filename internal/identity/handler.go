package identity

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Handler exposes account registration.
type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

type registerRequest struct {
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=8,max=72"`
	Firstname string `json:"firstname" form:"firstname" validate:"max=100"`
	Lastname  string `json:"lastname" form:"lastname" validate:"max=100"`
	Address   string `json:"address" form:"address" validate:"max=255"`
	Mobile    string `json:"mobile" form:"mobile" validate:"max=32"`
}

// Register handles account creation.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Body is invalid json")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "Required fields missing or invalid")
	}

	user, err := h.service.Register(c.UserContext(), RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Address:   req.Address,
		Mobile:    req.Mobile,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return fiber.NewError(http.StatusConflict, "Email already registered")
		}
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fiber.NewError(http.StatusBadRequest, "Password must be at most 72 bytes")
		}
		h.logger.Error("identity.register failed", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}

	h.logger.Info("identity.register completed", slog.Int64("user_id", user.ID))
	return c.Status(http.StatusCreated).JSON(user.Profile())
}
