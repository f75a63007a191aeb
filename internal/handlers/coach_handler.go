package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
	"github.com/renukapahade/sprouts-coach-connect/internal/repository"
	"github.com/renukapahade/sprouts-coach-connect/internal/services"
	"go.uber.org/zap"
)

type coachRepository interface {
	List(ctx context.Context, filter repository.CoachListFilter) ([]models.Coach, int, error)
	GetByID(ctx context.Context, coachID int64) (*models.Coach, error)
	Create(ctx context.Context, coach *models.Coach) error
}

type slotReader interface {
	DailySlots(ctx context.Context, coachID int64, date string) (*services.DailySlotsResult, error)
}

type CoachHandler struct {
	coachRepo   coachRepository
	slotService slotReader
	log         *zap.Logger
}

func NewCoachHandler(coachRepo coachRepository, slotService slotReader, log *zap.Logger) *CoachHandler {
	return &CoachHandler{
		coachRepo:   coachRepo,
		slotService: slotService,
		log:         log.With(zap.String("handler", "coach")),
	}
}

type availabilityRequest struct {
	Day       string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

type packageRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" validate:"required"`
	Duration      int      `json:"duration" validate:"required,min=1"`
	TotalSessions int      `json:"totalSessions" validate:"required,min=1"`
	Price         float64  `json:"price" validate:"required,min=1"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
}

type createCoachRequest struct {
	Name           string                `json:"name" validate:"required,min=2"`
	Email          string                `json:"email" validate:"required,email"`
	Phone          string                `json:"phone" validate:"required,min=10"`
	Specialization string                `json:"specialization" validate:"required,oneof=fitness nutrition both"`
	Bio            string                `json:"bio" validate:"required,min=50"`
	Experience     int                   `json:"experience" validate:"required,min=1"`
	Location       string                `json:"location" validate:"required,min=2"`
	Rating         *float64              `json:"rating" validate:"omitempty,min=0,max=5"`
	ReviewCount    *int                  `json:"reviewCount" validate:"omitempty,min=0"`
	Image          *string               `json:"image" validate:"omitempty,url"`
	Certifications []string              `json:"certifications"`
	HourlyRate     float64               `json:"hourlyRate" validate:"omitempty,min=0"`
	MonthlySlots   int                   `json:"monthlySlots" validate:"omitempty,min=0"`
	Availability   []availabilityRequest `json:"availability" validate:"omitempty,dive"`
	Packages       []packageRequest      `json:"packages" validate:"required,min=1,dive"`
}

func (h *CoachHandler) ListCoaches(c *fiber.Ctx) error {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	coaches, total, err := h.coachRepo.List(c.Context(), repository.CoachListFilter{
		Specialization: strings.TrimSpace(c.Query("specialization")),
		Search:         strings.TrimSpace(c.Query("search")),
		Offset:         (page - 1) * limit,
		Limit:          limit,
	})
	if err != nil {
		h.log.Error("list coaches failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch coaches"})
	}

	return c.JSON(fiber.Map{
		"data":       coaches,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *CoachHandler) CreateCoach(c *fiber.Ctx) error {
	var req createCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if details := validateStruct(req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}

	coach := models.Coach{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		Experience:     req.Experience,
		Location:       req.Location,
		Rating:         4.8,
		Image:          req.Image,
		Certifications: req.Certifications,
		HourlyRate:     req.HourlyRate,
		MonthlySlots:   req.MonthlySlots,
		Availability:   make([]models.AvailabilityWindow, 0, len(req.Availability)),
		Packages:       make([]models.Package, 0, len(req.Packages)),
	}
	if req.Rating != nil {
		coach.Rating = *req.Rating
	}
	if req.ReviewCount != nil {
		coach.ReviewCount = *req.ReviewCount
	}

	for _, window := range req.Availability {
		coach.Availability = append(coach.Availability, models.AvailabilityWindow{
			Day:       window.Day,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
		})
	}
	for _, pkg := range req.Packages {
		id := pkg.ID
		if id == "" {
			id = "pkg_" + uuid.NewString()
		}
		coach.Packages = append(coach.Packages, models.Package{
			ID:            id,
			Name:          pkg.Name,
			Duration:      pkg.Duration,
			TotalSessions: pkg.TotalSessions,
			Price:         pkg.Price,
			Description:   pkg.Description,
			Features:      pkg.Features,
		})
	}

	if err := h.coachRepo.Create(c.Context(), &coach); err != nil {
		h.log.Error("create coach failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create coach"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    fiber.Map{"id": coach.ID},
		"message": "Coach created successfully",
	})
}

func (h *CoachHandler) GetCoach(c *fiber.Ctx) error {
	coachID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || coachID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coach id"})
	}

	coach, err := h.coachRepo.GetByID(c.Context(), coachID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
		}
		h.log.Error("get coach failed", zap.Int64("coach_id", coachID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch coach"})
	}

	return c.JSON(coach)
}

func (h *CoachHandler) GetCoachSlots(c *fiber.Ctx) error {
	coachID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || coachID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coach id"})
	}

	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date parameter is required"})
	}

	result, err := h.slotService.DailySlots(c.Context(), coachID, date)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be formatted YYYY-MM-DD"})
		case errors.Is(err, services.ErrCoachNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
		default:
			h.log.Error("fetch slots failed", zap.Int64("coach_id", coachID), zap.String("date", date), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch slots"})
		}
	}

	return c.JSON(result)
}
