package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
	"github.com/renukapahade/sprouts-coach-connect/internal/repository"
)

type bookingWriter interface {
	Create(ctx context.Context, input repository.CreateBookingInput) (*models.Booking, error)
}

// BookingService handles direct single-slot reservations billed at the
// coach's hourly rate, outside the package/subscription flow.
type BookingService struct {
	coachRepo   coachReader
	bookingRepo bookingWriter
}

func NewBookingService(coachRepo coachReader, bookingRepo bookingWriter) *BookingService {
	return &BookingService{coachRepo: coachRepo, bookingRepo: bookingRepo}
}

type BookSlotInput struct {
	CoachID     int64
	ClientName  string
	ClientEmail string
	ClientPhone string
	Date        string
	StartTime   string
	Notes       *string
}

func (s *BookingService) Book(ctx context.Context, input BookSlotInput) (*models.Booking, error) {
	coach, err := s.coachRepo.GetByID(ctx, input.CoachID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	booking, err := s.bookingRepo.Create(ctx, repository.CreateBookingInput{
		CoachID:     coach.ID,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		Date:        input.Date,
		StartTime:   input.StartTime,
		Amount:      coach.HourlyRate,
		Notes:       input.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return booking, nil
}
