package models

import (
	"time"

	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

// RiderProfile is registration data for a delivery rider.
// Created once during onboarding, never mutated by the stats core.
type RiderProfile struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Phone       string    `json:"phone"`         // 10-digit mobile, country code excluded
	WeeklyGoal  float64   `json:"weekly_goal"`   // target earnings for the current week
	HoursPerDay float64   `json:"hours_per_day"` // hours the rider is available daily
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// Dashboard is what a rider sees on their weekly earnings screen.
type Dashboard struct {
	Profile      RiderProfile   `json:"profile"`
	Weekly       WeeklyStats    `json:"weekly"`
	GoalProgress float64        `json:"goal_progress"` // percent of weekly goal, capped at 100
	TopPlatform  *PlatformTotal `json:"top_platform,omitempty"`
}

// RiderSummary is a rider profile enriched with derived statistics
// for the operator fleet view.
type RiderSummary struct {
	Profile RiderProfile `json:"profile"`

	// CurrentEarnings is the running total for the current week,
	// not lifetime. It is compared against the weekly goal.
	CurrentEarnings    float64    `json:"current_earnings"`
	AvgDailyHours      float64    `json:"avg_daily_hours"`
	LastActive         time.Time  `json:"last_active"`
	SatisfactionRating float64    `json:"satisfaction_rating"`
	Activities         []Activity `json:"daily_activities"`
}
