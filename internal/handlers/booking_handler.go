package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
	"github.com/renukapahade/sprouts-coach-connect/internal/services"
	"go.uber.org/zap"
)

type bookingApplicationService interface {
	Book(ctx context.Context, input services.BookSlotInput) (*models.Booking, error)
}

type BookingHandler struct {
	service bookingApplicationService
	log     *zap.Logger
}

func NewBookingHandler(service *services.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log.With(zap.String("handler", "booking"))}
}

type createBookingRequest struct {
	CoachID     int64   `json:"coachId" validate:"required,min=1"`
	ClientName  string  `json:"clientName" validate:"required,min=2"`
	ClientEmail string  `json:"clientEmail" validate:"required,email"`
	ClientPhone string  `json:"clientPhone" validate:"required,min=10"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"startTime" validate:"required,datetime=15:04"`
	Notes       *string `json:"notes"`
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if details := validateStruct(req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}
	if req.Notes != nil && strings.TrimSpace(*req.Notes) == "" {
		req.Notes = nil
	}

	booking, err := h.service.Book(c.Context(), services.BookSlotInput{
		CoachID:     req.CoachID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Date:        req.Date,
		StartTime:   req.StartTime,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCoachNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
		case errors.Is(err, services.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slot is already booked"})
		default:
			h.log.Error("create booking failed", zap.Int64("coach_id", req.CoachID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      booking.ID,
		"booking": booking,
		"message": "Booking created successfully",
	})
}
