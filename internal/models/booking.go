package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a direct single-slot reservation against a coach's hourly
// rate, independent of the package/subscription flow.
type Booking struct {
	ID          int64     `json:"id"`
	CoachID     int64     `json:"coachId"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	ClientPhone string    `json:"clientPhone"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
