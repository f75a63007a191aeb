package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/renukapahade/sprouts-coach-connect/internal/services"
	"go.uber.org/zap"
)

type seeder interface {
	Seed(ctx context.Context) (*services.SeedResult, error)
}

type AdminHandler struct {
	seedService seeder
	log         *zap.Logger
}

func NewAdminHandler(seedService *services.SeedService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		seedService: seedService,
		log:         log.With(zap.String("handler", "admin")),
	}
}

// SeedDatabase replaces all coaches and users with the sample fixture set.
func (h *AdminHandler) SeedDatabase(c *fiber.Ctx) error {
	result, err := h.seedService.Seed(c.Context())
	if err != nil {
		h.log.Error("database seed failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to seed database"})
	}

	return c.JSON(fiber.Map{
		"coaches": result.Coaches,
		"users":   result.Users,
		"message": "Database seeded successfully",
	})
}
