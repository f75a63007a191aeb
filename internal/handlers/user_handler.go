package handlers

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
	"go.uber.org/zap"
)

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type UserHandler struct {
	userRepo userRepository
	log      *zap.Logger
}

func NewUserHandler(userRepo userRepository, log *zap.Logger) *UserHandler {
	return &UserHandler{userRepo: userRepo, log: log.With(zap.String("handler", "user"))}
}

type createUserRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10"`
}

// CreateUser is idempotent on email: an existing user is returned unchanged
// instead of being overwritten.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if details := validateStruct(req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}

	existing, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err == nil {
		return c.JSON(fiber.Map{
			"data":    existing,
			"message": "User already exists",
		})
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		h.log.Error("lookup user failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	user := models.User{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := h.userRepo.Create(c.Context(), &user); err != nil {
		h.log.Error("create user failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    user,
		"message": "User created successfully",
	})
}

func (h *UserHandler) GetUserByEmail(c *fiber.Ctx) error {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil || strings.TrimSpace(email) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email"})
	}

	user, err := h.userRepo.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		h.log.Error("fetch user failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	return c.JSON(user)
}
