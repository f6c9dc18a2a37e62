package dto

import (
	"time"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/Dastan7k/gig-track-system/pkg/validator"
)

const activityDateLayout = "2006-01-02"

type SubmitActivityRequest struct {
	Date               string  `json:"date"` // YYYY-MM-DD
	Earnings           float64 `json:"earnings"`
	HoursWorked        float64 `json:"hours_worked"`
	PrimaryPlatform    string  `json:"primary_platform"`
	SatisfactionRating int     `json:"satisfaction_rating"`
}

// ToModel builds the domain activity. Date must be validated first; an
// omitted date defaults to today.
func (r *SubmitActivityRequest) ToModel(riderID uuid.UUID) *models.Activity {
	var date time.Time
	if r.Date == "" {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	} else {
		date, _ = time.ParseInLocation(activityDateLayout, r.Date, time.Local)
	}
	return &models.Activity{
		RiderProfileID:     riderID,
		Date:               date,
		Earnings:           r.Earnings,
		HoursWorked:        r.HoursWorked,
		PrimaryPlatform:    r.PrimaryPlatform,
		SatisfactionRating: r.SatisfactionRating,
	}
}

func ValidateSubmitActivity(v *validator.Validator, req *SubmitActivityRequest) {
	// Empty date is allowed and defaults to today
	if req.Date != "" {
		_, err := time.ParseInLocation(activityDateLayout, req.Date, time.Local)
		v.Check(err == nil, "date", "must be in YYYY-MM-DD format")
	}

	v.Check(req.Earnings >= 0, "earnings", "must not be negative")

	v.Check(req.HoursWorked > 0, "hours_worked", "must be greater than zero")
	v.Check(req.HoursWorked <= 24, "hours_worked", "must not exceed 24")

	v.Check(req.PrimaryPlatform != "", "primary_platform", "must be provided")

	v.Check(req.SatisfactionRating >= 1, "satisfaction_rating", "must be between 1 and 5")
	v.Check(req.SatisfactionRating <= 5, "satisfaction_rating", "must be between 1 and 5")
}
