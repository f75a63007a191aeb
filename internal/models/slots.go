package models

// TimeSlot is one bookable hour within a coach's daily availability.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// MonthlySlotSummary reports a coach's capacity for one calendar month.
// AvailableSlots is not clamped: a negative value means the coach is
// overbooked and callers should treat the month as full.
type MonthlySlotSummary struct {
	TotalSlots     int `json:"totalSlots"`
	UsedSlots      int `json:"usedSlots"`
	AvailableSlots int `json:"availableSlots"`
}

// SubscriptionUsage reports session consumption against a package allotment.
type SubscriptionUsage struct {
	TotalSessions     int `json:"totalSessions"`
	UsedSessions      int `json:"usedSessions"`
	RemainingSessions int `json:"remainingSessions"`
}
