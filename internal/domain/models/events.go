package models

import (
	"time"

	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

// ActivityRecordedMessage is published after a daily activity is stored,
// for downstream consumers (ops dashboards, analytics).
type ActivityRecordedMessage struct {
	ActivityID         uuid.UUID `json:"activity_id"`
	RiderProfileID     uuid.UUID `json:"rider_profile_id"`
	Date               time.Time `json:"activity_date"`
	Earnings           float64   `json:"earnings"`
	HoursWorked        float64   `json:"hours_worked"`
	PrimaryPlatform    string    `json:"primary_platform"`
	SatisfactionRating int       `json:"satisfaction_rating"`
	Timestamp          time.Time `json:"timestamp"`
}
