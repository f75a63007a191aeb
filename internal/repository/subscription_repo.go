package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
)

type CreateSubscriptionInput struct {
	UserID        int64
	UserName      string
	UserEmail     string
	UserPhone     string
	CoachID       int64
	CoachName     string
	PackageID     string
	PackageName   string
	Duration      int
	TotalSessions int
	Price         float64
	StartDate     time.Time
	EndDate       time.Time
	Notes         *string
}

type SubscriptionRepository struct {
	db DBTX
}

func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

const subscriptionColumns = `id, user_id, user_name, user_email, user_phone, coach_id, coach_name,
	package_id, package_name, duration, total_sessions, used_sessions, price,
	start_date, end_date, status, payment_status, order_id, payment_session_id,
	payment_id, notes, created_at, updated_at`

func scanSubscription(row pgx.Row) (*models.Subscription, error) {
	var sub models.Subscription
	err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.UserName,
		&sub.UserEmail,
		&sub.UserPhone,
		&sub.CoachID,
		&sub.CoachName,
		&sub.PackageID,
		&sub.PackageName,
		&sub.Duration,
		&sub.TotalSessions,
		&sub.UsedSessions,
		&sub.Price,
		&sub.StartDate,
		&sub.EndDate,
		&sub.Status,
		&sub.PaymentStatus,
		&sub.OrderID,
		&sub.PaymentSessionID,
		&sub.PaymentID,
		&sub.Notes,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, input CreateSubscriptionInput) (*models.Subscription, error) {
	query := fmt.Sprintf(`
		INSERT INTO subscriptions (user_id, user_name, user_email, user_phone, coach_id,
			coach_name, package_id, package_name, duration, total_sessions, used_sessions,
			price, start_date, end_date, status, payment_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $12, $13, 'pending', 'pending', $14)
		RETURNING %s
	`, subscriptionColumns)

	return scanSubscription(r.db.QueryRow(ctx, query,
		input.UserID,
		input.UserName,
		input.UserEmail,
		input.UserPhone,
		input.CoachID,
		input.CoachName,
		input.PackageID,
		input.PackageName,
		input.Duration,
		input.TotalSessions,
		input.Price,
		input.StartDate,
		input.EndDate,
		input.Notes,
	))
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, subscriptionID int64) (*models.Subscription, error) {
	query := fmt.Sprintf(`SELECT %s FROM subscriptions WHERE id = $1`, subscriptionColumns)
	return scanSubscription(r.db.QueryRow(ctx, query, subscriptionID))
}

func (r *SubscriptionRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Subscription, error) {
	query := fmt.Sprintf(`SELECT %s FROM subscriptions WHERE order_id = $1`, subscriptionColumns)
	return scanSubscription(r.db.QueryRow(ctx, query, orderID))
}

func (r *SubscriptionRepository) ListByUserEmail(ctx context.Context, email string) ([]models.Subscription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM subscriptions
		WHERE user_email = $1
		ORDER BY created_at DESC, id DESC
	`, subscriptionColumns)

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]models.Subscription, 0)
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *sub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

// SetPaymentSession records the gateway correlation ids handed back when a
// hosted payment session is opened.
func (r *SubscriptionRepository) SetPaymentSession(ctx context.Context, subscriptionID int64, orderID, paymentSessionID string) (*models.Subscription, error) {
	query := fmt.Sprintf(`
		UPDATE subscriptions
		SET order_id = $2, payment_session_id = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, subscriptionColumns)

	return scanSubscription(r.db.QueryRow(ctx, query, subscriptionID, orderID, paymentSessionID))
}

// SettlePaymentIfPending finalises the payment outcome for an order. The
// WHERE status = 'pending' guard makes the pending -> active/cancelled
// transition one-way: a repeat verification matches no row and the caller
// sees pgx.ErrNoRows instead of overwriting a settled subscription.
func (r *SubscriptionRepository) SettlePaymentIfPending(ctx context.Context, orderID, status, paymentStatus string, paymentID *string) (*models.Subscription, error) {
	query := fmt.Sprintf(`
		UPDATE subscriptions
		SET status = $2, payment_status = $3, payment_id = COALESCE($4, payment_id), updated_at = NOW()
		WHERE order_id = $1 AND status = 'pending'
		RETURNING %s
	`, subscriptionColumns)

	return scanSubscription(r.db.QueryRow(ctx, query, orderID, status, paymentStatus, paymentID))
}

// ConsumeSession increments used_sessions, bounded by the package allotment.
// The guard keeps used_sessions <= total_sessions even under concurrent
// scheduling; exhaustion surfaces as pgx.ErrNoRows.
func (r *SubscriptionRepository) ConsumeSession(ctx context.Context, subscriptionID int64) (*models.Subscription, error) {
	query := fmt.Sprintf(`
		UPDATE subscriptions
		SET used_sessions = used_sessions + 1, updated_at = NOW()
		WHERE id = $1 AND status = 'active' AND used_sessions < total_sessions
		RETURNING %s
	`, subscriptionColumns)

	return scanSubscription(r.db.QueryRow(ctx, query, subscriptionID))
}
