package models

import "time"

// Session is one calendar-scheduled occurrence with a coach. Sessions are
// the unit counted against a coach's monthly capacity; sessions created
// through a subscription also consume that subscription's allotment.
type Session struct {
	ID             int64     `json:"id"`
	SubscriptionID *int64    `json:"subscriptionId,omitempty"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	CoachID        int64     `json:"coachId"`
	CoachName      string    `json:"coachName"`
	PackageName    string    `json:"packageName,omitempty"`
	Date           string    `json:"date"`      // "YYYY-MM-DD"
	StartTime      string    `json:"startTime"` // "HH:MM"
	EndTime        string    `json:"endTime"`
	SessionType    string    `json:"sessionType"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
