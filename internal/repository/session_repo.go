package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
)

type CreateSessionInput struct {
	SubscriptionID *int64
	UserName       string
	UserEmail      string
	CoachID        int64
	CoachName      string
	PackageName    string
	Date           string
	StartTime      string
	EndTime        string
	SessionType    string
	Notes          *string
}

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, input CreateSessionInput) (*models.Session, error) {
	query := `
		INSERT INTO sessions (subscription_id, user_name, user_email, coach_id, coach_name,
			package_name, date, start_time, end_time, session_type, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending', $11)
		RETURNING id, subscription_id, user_name, user_email, coach_id, coach_name,
			package_name, date, start_time, end_time, session_type, status, notes,
			created_at, updated_at
	`

	var session models.Session
	err := r.db.QueryRow(ctx, query,
		input.SubscriptionID,
		input.UserName,
		input.UserEmail,
		input.CoachID,
		input.CoachName,
		input.PackageName,
		input.Date,
		input.StartTime,
		input.EndTime,
		input.SessionType,
		input.Notes,
	).Scan(
		&session.ID,
		&session.SubscriptionID,
		&session.UserName,
		&session.UserEmail,
		&session.CoachID,
		&session.CoachName,
		&session.PackageName,
		&session.Date,
		&session.StartTime,
		&session.EndTime,
		&session.SessionType,
		&session.Status,
		&session.Notes,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}
	return &session, nil
}

// CountForCoachBetween counts slot-occupying sessions for a coach whose date
// falls in [fromDate, toDate]. Dates are "YYYY-MM-DD" strings, so string
// comparison matches calendar order.
func (r *SessionRepository) CountForCoachBetween(ctx context.Context, coachID int64, fromDate, toDate string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM sessions
		WHERE coach_id = $1
		  AND date >= $2
		  AND date <= $3
		  AND status IN ('confirmed', 'pending')
	`
	var count int
	if err := r.db.QueryRow(ctx, query, coachID, fromDate, toDate).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// BookedStartTimes returns the start times already occupied for a coach on
// one date by confirmed or pending sessions.
func (r *SessionRepository) BookedStartTimes(ctx context.Context, coachID int64, date string) ([]string, error) {
	query := `
		SELECT start_time
		FROM sessions
		WHERE coach_id = $1
		  AND date = $2
		  AND status IN ('confirmed', 'pending')
		ORDER BY start_time ASC
	`
	rows, err := r.db.Query(ctx, query, coachID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	times := make([]string, 0)
	for rows.Next() {
		var startTime string
		if err := rows.Scan(&startTime); err != nil {
			return nil, err
		}
		times = append(times, startTime)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return times, nil
}

func (r *SessionRepository) CountForSubscription(ctx context.Context, subscriptionID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM sessions
		WHERE subscription_id = $1
		  AND status IN ('confirmed', 'pending')
	`
	var count int
	if err := r.db.QueryRow(ctx, query, subscriptionID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
