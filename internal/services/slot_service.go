package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
)

const slotMinutes = 60

type coachReader interface {
	GetByID(ctx context.Context, coachID int64) (*models.Coach, error)
}

type sessionOccupancyReader interface {
	CountForCoachBetween(ctx context.Context, coachID int64, fromDate, toDate string) (int, error)
	BookedStartTimes(ctx context.Context, coachID int64, date string) ([]string, error)
	CountForSubscription(ctx context.Context, subscriptionID int64) (int, error)
}

type subscriptionReader interface {
	GetByID(ctx context.Context, subscriptionID int64) (*models.Subscription, error)
}

// SlotService computes calendar availability: how much of a coach's monthly
// capacity is left, and which hourly windows are free on a given day.
type SlotService struct {
	coachRepo        coachReader
	sessionRepo      sessionOccupancyReader
	subscriptionRepo subscriptionReader
}

func NewSlotService(
	coachRepo coachReader,
	sessionRepo sessionOccupancyReader,
	subscriptionRepo subscriptionReader,
) *SlotService {
	return &SlotService{
		coachRepo:        coachRepo,
		sessionRepo:      sessionRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// DailySlotsResult carries the generated slots plus the monthly summary the
// caller needs for context, and a human-readable reason when empty.
type DailySlotsResult struct {
	Slots           []models.TimeSlot         `json:"slots"`
	MonthlySlotInfo models.MonthlySlotSummary `json:"monthlySlotInfo"`
	Message         string                    `json:"message,omitempty"`
}

func (s *SlotService) MonthlySummary(ctx context.Context, coachID int64, year, month int) (*models.MonthlySlotSummary, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidInput
	}

	coach, err := s.coachRepo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	return s.monthlySummaryForCoach(ctx, coach, year, month)
}

func (s *SlotService) monthlySummaryForCoach(ctx context.Context, coach *models.Coach, year, month int) (*models.MonthlySlotSummary, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	used, err := s.sessionRepo.CountForCoachBetween(
		ctx,
		coach.ID,
		monthStart.Format("2006-01-02"),
		monthEnd.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	// AvailableSlots goes negative when a coach is overbooked; callers treat
	// anything <= 0 as a full month.
	return &models.MonthlySlotSummary{
		TotalSlots:     coach.MonthlySlots,
		UsedSlots:      used,
		AvailableSlots: coach.MonthlySlots - used,
	}, nil
}

func (s *SlotService) DailySlots(ctx context.Context, coachID int64, date string) (*DailySlotsResult, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidInput
	}

	coach, err := s.coachRepo.GetByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	summary, err := s.monthlySummaryForCoach(ctx, coach, day.Year(), int(day.Month()))
	if err != nil {
		return nil, err
	}

	// The monthly cap takes precedence over daily generation.
	if summary.AvailableSlots <= 0 {
		return &DailySlotsResult{
			Slots:           []models.TimeSlot{},
			MonthlySlotInfo: *summary,
			Message:         "No monthly slots available for this month",
		}, nil
	}

	window := findAvailability(coach.Availability, day)
	if window == nil {
		return &DailySlotsResult{
			Slots:           []models.TimeSlot{},
			MonthlySlotInfo: *summary,
			Message:         "No availability configured for this day",
		}, nil
	}

	booked, err := s.sessionRepo.BookedStartTimes(ctx, coachID, date)
	if err != nil {
		return nil, err
	}

	slots, err := generateTimeSlots(window.StartTime, window.EndTime, booked)
	if err != nil {
		return nil, err
	}

	return &DailySlotsResult{
		Slots:           slots,
		MonthlySlotInfo: *summary,
	}, nil
}

// SubscriptionUsage reports how much of a package allotment has been
// consumed by confirmed or pending sessions.
func (s *SlotService) SubscriptionUsage(ctx context.Context, subscriptionID int64) (*models.SubscriptionUsage, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	used, err := s.sessionRepo.CountForSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	return &models.SubscriptionUsage{
		TotalSessions:     sub.TotalSessions,
		UsedSessions:      used,
		RemainingSessions: sub.TotalSessions - used,
	}, nil
}

func findAvailability(windows []models.AvailabilityWindow, day time.Time) *models.AvailabilityWindow {
	weekday := strings.ToLower(day.Weekday().String())
	for i := range windows {
		if strings.ToLower(windows[i].Day) == weekday {
			return &windows[i]
		}
	}
	return nil
}

// generateTimeSlots walks [startTime, endTime) in one-hour steps, skipping
// starts already taken. A trailing partial hour is emitted with its end
// clamped to the window end.
func generateTimeSlots(startTime, endTime string, bookedStarts []string) ([]models.TimeSlot, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(bookedStarts))
	for _, t := range bookedStarts {
		taken[t] = struct{}{}
	}

	slots := make([]models.TimeSlot, 0)
	for at := start; at < end; at += slotMinutes {
		slotStart := formatClock(at)
		if _, booked := taken[slotStart]; booked {
			continue
		}
		slotEnd := at + slotMinutes
		if slotEnd > end {
			slotEnd = end
		}
		slots = append(slots, models.TimeSlot{
			StartTime: slotStart,
			EndTime:   formatClock(slotEnd),
			Available: true,
		})
	}
	return slots, nil
}

func parseClock(value string) (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(value, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	return hours*60 + minutes, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
