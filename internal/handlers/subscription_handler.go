package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
	"github.com/renukapahade/sprouts-coach-connect/internal/services"
	"go.uber.org/zap"
)

type subscriptionApplicationService interface {
	Create(ctx context.Context, input services.CreateSubscriptionInput) (*models.Subscription, error)
	ListForUser(ctx context.Context, email string) ([]models.Subscription, error)
	ScheduleSession(ctx context.Context, input services.ScheduleSessionInput) (*models.Session, error)
}

type subscriptionUsageReader interface {
	SubscriptionUsage(ctx context.Context, subscriptionID int64) (*models.SubscriptionUsage, error)
}

type SubscriptionHandler struct {
	service     subscriptionApplicationService
	slotService subscriptionUsageReader
	log         *zap.Logger
}

func NewSubscriptionHandler(
	service *services.SubscriptionService,
	slotService *services.SlotService,
	log *zap.Logger,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		service:     service,
		slotService: slotService,
		log:         log.With(zap.String("handler", "subscription")),
	}
}

type createSubscriptionRequest struct {
	CoachID     int64   `json:"coachId" validate:"required,min=1"`
	PackageID   string  `json:"packageId" validate:"required"`
	ClientName  string  `json:"clientName" validate:"required,min=2"`
	ClientEmail string  `json:"clientEmail" validate:"required,email"`
	ClientPhone string  `json:"clientPhone" validate:"required,min=10"`
	Notes       *string `json:"notes"`
}

type scheduleSessionRequest struct {
	SubscriptionID int64   `json:"subscriptionId" validate:"required,min=1"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string  `json:"startTime" validate:"required,datetime=15:04"`
	SessionType    string  `json:"sessionType" validate:"omitempty,oneof=fitness nutrition consultation"`
	Notes          *string `json:"notes"`
}

func (h *SubscriptionHandler) CreateSubscription(c *fiber.Ctx) error {
	var req createSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if details := validateStruct(req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}

	sub, err := h.service.Create(c.Context(), services.CreateSubscriptionInput{
		CoachID:     req.CoachID,
		PackageID:   req.PackageID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCoachNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
		case errors.Is(err, services.ErrPackageNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
		default:
			h.log.Error("create subscription failed", zap.Int64("coach_id", req.CoachID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create subscription"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    sub,
		"message": "Package booking created successfully",
	})
}

func (h *SubscriptionHandler) ListSubscriptions(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("userEmail"))
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User email is required"})
	}

	subs, err := h.service.ListForUser(c.Context(), email)
	if err != nil {
		h.log.Error("list subscriptions failed", zap.String("user_email", email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subscriptions"})
	}

	return c.JSON(fiber.Map{"data": subs})
}

func (h *SubscriptionHandler) GetSubscriptionUsage(c *fiber.Ctx) error {
	subscriptionID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || subscriptionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subscription id"})
	}

	usage, err := h.slotService.SubscriptionUsage(c.Context(), subscriptionID)
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subscription not found"})
		}
		h.log.Error("fetch usage failed", zap.Int64("subscription_id", subscriptionID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subscription usage"})
	}

	return c.JSON(usage)
}

func (h *SubscriptionHandler) ScheduleSession(c *fiber.Ctx) error {
	var req scheduleSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if details := validateStruct(req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}

	session, err := h.service.ScheduleSession(c.Context(), services.ScheduleSessionInput{
		SubscriptionID: req.SubscriptionID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		SessionType:    req.SessionType,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubscriptionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subscription not found"})
		case errors.Is(err, services.ErrCoachNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requested slot is outside the coach's availability"})
		case errors.Is(err, services.ErrInvalidState):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Subscription is not active"})
		case errors.Is(err, services.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slot is already booked"})
		case errors.Is(err, services.ErrAllotmentExhausted):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "No sessions remaining on this subscription"})
		default:
			h.log.Error("schedule session failed", zap.Int64("subscription_id", req.SubscriptionID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to schedule session"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    session,
		"message": "Session scheduled successfully",
	})
}
