package models

import "time"

const (
	SubscriptionPending   = "pending"
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Subscription is one client's purchase of a coach's package. The coach and
// package fields are copied at creation time so later price or package edits
// never change what the client bought.
type Subscription struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	UserName         string    `json:"userName"`
	UserEmail        string    `json:"userEmail"`
	UserPhone        string    `json:"userPhone"`
	CoachID          int64     `json:"coachId"`
	CoachName        string    `json:"coachName"`
	PackageID        string    `json:"packageId"`
	PackageName      string    `json:"packageName"`
	Duration         int       `json:"duration"` // months
	TotalSessions    int       `json:"totalSessions"`
	UsedSessions     int       `json:"usedSessions"`
	Price            float64   `json:"price"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"paymentStatus"`
	OrderID          *string   `json:"orderId,omitempty"`
	PaymentSessionID *string   `json:"paymentSessionId,omitempty"`
	PaymentID        *string   `json:"paymentId,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
