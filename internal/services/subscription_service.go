package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
	"github.com/renukapahade/sprouts-coach-connect/internal/repository"
	"go.uber.org/zap"
)

type userUpserter interface {
	GetOrCreate(ctx context.Context, name, email, phone string) (*models.User, error)
}

type subscriptionStore interface {
	Create(ctx context.Context, input repository.CreateSubscriptionInput) (*models.Subscription, error)
	GetByID(ctx context.Context, subscriptionID int64) (*models.Subscription, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Subscription, error)
	ListByUserEmail(ctx context.Context, email string) ([]models.Subscription, error)
	SetPaymentSession(ctx context.Context, subscriptionID int64, orderID, paymentSessionID string) (*models.Subscription, error)
	SettlePaymentIfPending(ctx context.Context, orderID, status, paymentStatus string, paymentID *string) (*models.Subscription, error)
}

type sessionReader interface {
	CountForCoachBetween(ctx context.Context, coachID int64, fromDate, toDate string) (int, error)
	BookedStartTimes(ctx context.Context, coachID int64, date string) ([]string, error)
}

type sessionScheduler interface {
	Schedule(ctx context.Context, subscriptionID int64, input repository.CreateSessionInput) (*models.Session, error)
}

// SubscriptionService owns the purchase lifecycle: pending on creation,
// active or cancelled once the payment gateway settles, expired computed
// lazily once the end date passes.
type SubscriptionService struct {
	coachRepo        coachReader
	userRepo         userUpserter
	subscriptionRepo subscriptionStore
	sessionRepo      sessionReader
	scheduler        sessionScheduler
	gateway          PaymentGateway
	log              *zap.Logger
}

func NewSubscriptionService(
	coachRepo coachReader,
	userRepo userUpserter,
	subscriptionRepo subscriptionStore,
	sessionRepo sessionReader,
	scheduler sessionScheduler,
	gateway PaymentGateway,
	log *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		coachRepo:        coachRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		sessionRepo:      sessionRepo,
		scheduler:        scheduler,
		gateway:          gateway,
		log:              log,
	}
}

type CreateSubscriptionInput struct {
	CoachID     int64
	PackageID   string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       *string
}

// Create records a pending subscription carrying a snapshot of the chosen
// package. The coach and package are resolved before any write, so a bad
// reference never creates a user or a subscription.
func (s *SubscriptionService) Create(ctx context.Context, input CreateSubscriptionInput) (*models.Subscription, error) {
	coach, err := s.coachRepo.GetByID(ctx, input.CoachID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	pkg := coach.FindPackage(input.PackageID)
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	user, err := s.userRepo.GetOrCreate(ctx, input.ClientName, input.ClientEmail, input.ClientPhone)
	if err != nil {
		return nil, err
	}

	startDate := time.Now().UTC()
	endDate := startDate.AddDate(0, pkg.Duration, 0)

	sub, err := s.subscriptionRepo.Create(ctx, repository.CreateSubscriptionInput{
		UserID:        user.ID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		UserPhone:     user.Phone,
		CoachID:       coach.ID,
		CoachName:     coach.Name,
		PackageID:     pkg.ID,
		PackageName:   pkg.Name,
		Duration:      pkg.Duration,
		TotalSessions: pkg.TotalSessions,
		Price:         pkg.Price,
		StartDate:     startDate,
		EndDate:       endDate,
		Notes:         input.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("subscription created",
		zap.Int64("subscription_id", sub.ID),
		zap.Int64("coach_id", coach.ID),
		zap.String("package_id", pkg.ID),
	)
	return sub, nil
}

type PaymentSession struct {
	PaymentSessionID string `json:"paymentSessionId"`
	OrderID          string `json:"orderId"`
}

// OpenPayment opens a hosted payment session for a pending subscription and
// persists the gateway correlation ids for later verification.
func (s *SubscriptionService) OpenPayment(ctx context.Context, subscriptionID int64) (*PaymentSession, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	if sub.Status != models.SubscriptionPending {
		return nil, ErrInvalidState
	}

	orderID := fmt.Sprintf("SUB_%d_%d", sub.ID, time.Now().UnixMilli())

	order, err := s.gateway.CreateOrder(ctx, CreateOrderInput{
		OrderID:       orderID,
		Amount:        sub.Price,
		CustomerName:  sub.UserName,
		CustomerEmail: sub.UserEmail,
		CustomerPhone: sub.UserPhone,
	})
	if err != nil {
		s.log.Error("payment session creation failed",
			zap.Int64("subscription_id", sub.ID),
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("open payment session: %w", err)
	}

	if _, err := s.subscriptionRepo.SetPaymentSession(ctx, sub.ID, orderID, order.PaymentSessionID); err != nil {
		return nil, err
	}

	return &PaymentSession{
		PaymentSessionID: order.PaymentSessionID,
		OrderID:          orderID,
	}, nil
}

type VerifyResult struct {
	Activated    bool                 `json:"success"`
	Subscription *models.Subscription `json:"-"`
}

// Verify asks the gateway for the authoritative order status and finalises
// the subscription. The transition is one-way: once a subscription has left
// pending, repeat verifications report the settled outcome without writing.
func (s *SubscriptionService) Verify(ctx context.Context, orderID string) (*VerifyResult, error) {
	sub, err := s.subscriptionRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	if sub.Status != models.SubscriptionPending {
		return &VerifyResult{
			Activated:    sub.Status == models.SubscriptionActive,
			Subscription: sub,
		}, nil
	}

	order, err := s.gateway.FetchOrder(ctx, orderID)
	if err != nil {
		s.log.Error("payment verification failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("verify payment: %w", err)
	}

	status, paymentStatus := models.SubscriptionCancelled, models.PaymentFailed
	var paymentID *string
	if order.OrderStatus == OrderStatusPaid {
		status, paymentStatus = models.SubscriptionActive, models.PaymentCompleted
		if order.CFOrderID != "" {
			paymentID = &order.CFOrderID
		}
	}

	settled, err := s.subscriptionRepo.SettlePaymentIfPending(ctx, orderID, status, paymentStatus, paymentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the settle race to a concurrent verification; report
			// whatever outcome won.
			current, err := s.subscriptionRepo.GetByOrderID(ctx, orderID)
			if err != nil {
				return nil, err
			}
			return &VerifyResult{
				Activated:    current.Status == models.SubscriptionActive,
				Subscription: current,
			}, nil
		}
		return nil, err
	}

	s.log.Info("payment settled",
		zap.String("order_id", orderID),
		zap.String("status", settled.Status),
		zap.String("payment_status", settled.PaymentStatus),
	)
	return &VerifyResult{
		Activated:    settled.Status == models.SubscriptionActive,
		Subscription: settled,
	}, nil
}

// ListForUser returns a user's subscriptions newest first. Expiry is derived
// at read time: an active subscription past its end date reports as expired
// without a background sweep.
func (s *SubscriptionService) ListForUser(ctx context.Context, email string) ([]models.Subscription, error) {
	subs, err := s.subscriptionRepo.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range subs {
		if subs[i].Status == models.SubscriptionActive && subs[i].EndDate.Before(now) {
			subs[i].Status = models.SubscriptionExpired
		}
	}
	return subs, nil
}

type ScheduleSessionInput struct {
	SubscriptionID int64
	Date           string // "YYYY-MM-DD"
	StartTime      string // "HH:MM"
	SessionType    string
	Notes          *string
}

// ScheduleSession books one calendar session against an active
// subscription: the slot must fall inside the coach's weekly window, be
// free, and fit both the coach's monthly capacity and the package
// allotment. The consume and the insert run in one transaction; the
// guarded update keeps used_sessions <= total_sessions and the sessions
// unique index decides concurrent claims on the same slot.
func (s *SubscriptionService) ScheduleSession(ctx context.Context, input ScheduleSessionInput) (*models.Session, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, input.SubscriptionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	if sub.Status != models.SubscriptionActive || sub.EndDate.Before(now) {
		return nil, ErrInvalidState
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}

	coach, err := s.coachRepo.GetByID(ctx, sub.CoachID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
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
	if coach.MonthlySlots-used <= 0 {
		return nil, ErrConflict
	}

	window := findAvailability(coach.Availability, day)
	if window == nil {
		return nil, ErrInvalidInput
	}

	booked, err := s.sessionRepo.BookedStartTimes(ctx, coach.ID, input.Date)
	if err != nil {
		return nil, err
	}
	slots, err := generateTimeSlots(window.StartTime, window.EndTime, booked)
	if err != nil {
		return nil, err
	}

	var slot *models.TimeSlot
	for i := range slots {
		if slots[i].StartTime == input.StartTime {
			slot = &slots[i]
			break
		}
	}
	if slot == nil {
		for _, taken := range booked {
			if taken == input.StartTime {
				return nil, ErrConflict
			}
		}
		return nil, ErrInvalidInput
	}

	sessionType := input.SessionType
	if sessionType == "" {
		sessionType = defaultSessionType(coach.Specialization)
	}

	session, err := s.scheduler.Schedule(ctx, sub.ID, repository.CreateSessionInput{
		SubscriptionID: &sub.ID,
		UserName:       sub.UserName,
		UserEmail:      sub.UserEmail,
		CoachID:        coach.ID,
		CoachName:      coach.Name,
		PackageName:    sub.PackageName,
		Date:           input.Date,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		SessionType:    sessionType,
		Notes:          input.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrAllotmentExhausted
		case errors.Is(err, repository.ErrDuplicateSlot):
			// Lost the slot to a concurrent scheduling; the consume was
			// rolled back with the transaction.
			return nil, ErrConflict
		}
		return nil, err
	}

	s.log.Info("session scheduled",
		zap.Int64("subscription_id", sub.ID),
		zap.Int64("coach_id", coach.ID),
		zap.String("date", input.Date),
		zap.String("start_time", slot.StartTime),
	)
	return session, nil
}

func defaultSessionType(specialization string) string {
	switch specialization {
	case "fitness", "nutrition":
		return specialization
	default:
		return "consultation"
	}
}
