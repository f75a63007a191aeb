package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
)

// TxBeginner opens transactions; satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SessionScheduler runs the allotment consume and the session insert in one
// transaction: a failed insert rolls back the used_sessions increment, so
// the allotment never drifts from the session rows backing it.
type SessionScheduler struct {
	db TxBeginner
}

func NewSessionScheduler(db TxBeginner) *SessionScheduler {
	return &SessionScheduler{db: db}
}

// Schedule consumes one session from the subscription's allotment and
// inserts the session row. Exhaustion surfaces as pgx.ErrNoRows from the
// guarded update; a concurrent insert for the same coach slot surfaces as
// ErrDuplicateSlot from the sessions unique index.
func (s *SessionScheduler) Schedule(ctx context.Context, subscriptionID int64, input CreateSessionInput) (*models.Session, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := NewSubscriptionRepository(tx).ConsumeSession(ctx, subscriptionID); err != nil {
		return nil, err
	}

	session, err := NewSessionRepository(tx).Create(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return session, nil
}
