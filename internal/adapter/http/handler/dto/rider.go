package dto

import (
	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/internal/service/identity"
	"github.com/Dastan7k/gig-track-system/pkg/validator"
)

type CreateRiderProfileRequest struct {
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	Phone             string   `json:"phone"`
	WeeklyGoal        float64  `json:"weekly_goal"`
	HoursPerDay       float64  `json:"hours_per_day"`
	ServiceAreas      []string `json:"service_areas"`
	DeliveryPlatforms []string `json:"delivery_platforms"`
}

func (r *CreateRiderProfileRequest) ToModel() *models.RiderProfile {
	return &models.RiderProfile{
		Name:        r.Name,
		Age:         r.Age,
		Phone:       r.Phone,
		WeeklyGoal:  r.WeeklyGoal,
		HoursPerDay: r.HoursPerDay,
	}
}

func ValidateNewRiderProfile(v *validator.Validator, req *CreateRiderProfileRequest) {
	v.Check(req.Name != "", "name", "must be provided")
	v.Check(len(req.Name) <= 500, "name", "must not be more than 500 bytes long")

	v.Check(req.Age >= 18, "age", "must be at least 18")
	v.Check(req.Age <= 100, "age", "must be realistic")

	v.Check(req.Phone != "", "phone", "must be provided")
	v.Check(identity.IsValidMobile(req.Phone), "phone", "must be exactly 10 digits")

	v.Check(req.WeeklyGoal >= 0, "weekly_goal", "must not be negative")
	v.Check(req.HoursPerDay >= 0, "hours_per_day", "must not be negative")
	v.Check(req.HoursPerDay <= 24, "hours_per_day", "must not exceed 24")

	v.Check(len(req.ServiceAreas) > 0, "service_areas", "must contain at least one area")
	v.Check(validator.Unique(req.ServiceAreas), "service_areas", "must not contain duplicates")

	v.Check(len(req.DeliveryPlatforms) > 0, "delivery_platforms", "must contain at least one platform")
	v.Check(validator.Unique(req.DeliveryPlatforms), "delivery_platforms", "must not contain duplicates")
}
