package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
)

// ErrDuplicateSlot reports that a slot-occupying row already exists for the
// same coach, date and start time. Uniqueness for bookings and sessions is
// enforced by partial unique indexes, so concurrent inserts cannot both
// succeed.
var ErrDuplicateSlot = errors.New("slot already booked")

type CreateBookingInput struct {
	CoachID     int64
	ClientName  string
	ClientEmail string
	ClientPhone string
	Date        string
	StartTime   string
	Amount      float64
	Notes       *string
}

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (coach_id, client_name, client_email, client_phone,
			date, start_time, amount, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', $8)
		RETURNING id, coach_id, client_name, client_email, client_phone, date,
			start_time, amount, status, notes, created_at, updated_at
	`

	var booking models.Booking
	err := r.db.QueryRow(ctx, query,
		input.CoachID,
		input.ClientName,
		input.ClientEmail,
		input.ClientPhone,
		input.Date,
		input.StartTime,
		input.Amount,
		input.Notes,
	).Scan(
		&booking.ID,
		&booking.CoachID,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.ClientPhone,
		&booking.Date,
		&booking.StartTime,
		&booking.Amount,
		&booking.Status,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}
	return &booking, nil
}
