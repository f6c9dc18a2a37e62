package models

import (
	"time"

	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

// Activity is one rider's reported outcome for a single calendar day.
// Immutable once stored.
type Activity struct {
	ID                 uuid.UUID `json:"id"`
	RiderProfileID     uuid.UUID `json:"rider_profile_id"`
	Date               time.Time `json:"activity_date"` // day granularity
	Earnings           float64   `json:"earnings"`
	HoursWorked        float64   `json:"hours_worked"`
	PrimaryPlatform    string    `json:"primary_platform"`
	SatisfactionRating int       `json:"satisfaction_rating"` // 1..5
	CreatedAt          time.Time `json:"created_at"`
}

// WeeklyStats is computed from a rider's records restricted to the
// current week window. Recomputed on demand, never persisted.
type WeeklyStats struct {
	TotalEarnings float64    `json:"total_earnings"`
	TotalHours    float64    `json:"total_hours"`
	AvgRating     float64    `json:"avg_rating"`
	DaysWorked    int        `json:"days_worked"`
	Activities    []Activity `json:"activities"`
}

// PlatformTotal is earnings grouped by delivery platform label.
type PlatformTotal struct {
	Platform string  `json:"platform"`
	Earnings float64 `json:"earnings"`
}

// FleetStats is the rollup across all riders for the operator panel.
type FleetStats struct {
	TotalRiders     int     `json:"total_riders"`
	ActiveRiders    int     `json:"active_riders"`
	TotalEarnings   float64 `json:"total_earnings"`
	AvgSatisfaction float64 `json:"avg_satisfaction"`
}
