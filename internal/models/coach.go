package models

import "time"

// AvailabilityWindow is one weekly recurring window in a coach's calendar.
// Day is a lowercase weekday name, times are "HH:MM" strings.
type AvailabilityWindow struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Package is a bundle of sessions sold by a coach. Packages live embedded
// in their coach's record and are never addressable on their own; live
// subscriptions carry a snapshot of these fields instead of a reference.
type Package struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Duration      int      `json:"duration"` // months
	TotalSessions int      `json:"totalSessions"`
	Price         float64  `json:"price"`
	Description   string   `json:"description"`
	Features      []string `json:"features,omitempty"`
}

type Coach struct {
	ID             int64                `json:"id"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	Specialization string               `json:"specialization"`
	Bio            string               `json:"bio"`
	Experience     int                  `json:"experience"`
	Location       string               `json:"location"`
	Rating         float64              `json:"rating"`
	ReviewCount    int                  `json:"reviewCount"`
	Image          *string              `json:"image,omitempty"`
	Certifications []string             `json:"certifications,omitempty"`
	HourlyRate     float64              `json:"hourlyRate"`
	MonthlySlots   int                  `json:"monthlySlots"`
	Availability   []AvailabilityWindow `json:"availability"`
	Packages       []Package            `json:"packages"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// FindPackage returns the embedded package with the given id, or nil.
func (c *Coach) FindPackage(packageID string) *Package {
	for i := range c.Packages {
		if c.Packages[i].ID == packageID {
			return &c.Packages[i]
		}
	}
	return nil
}
