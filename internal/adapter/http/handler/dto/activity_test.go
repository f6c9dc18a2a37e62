package dto

import (
	"testing"

	"github.com/Dastan7k/gig-track-system/pkg/validator"
)

func validSubmit() SubmitActivityRequest {
	return SubmitActivityRequest{
		Date:               "2026-08-30",
		Earnings:           650,
		HoursWorked:        8,
		PrimaryPlatform:    "Swiggy",
		SatisfactionRating: 4,
	}
}

func TestValidateSubmitActivity_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitActivityRequest)
		wantOK  bool
		wantKey string
	}{
		{
			name:   "valid request",
			mutate: func(r *SubmitActivityRequest) {},
			wantOK: true,
		},
		{
			name:   "zero earnings accepted",
			mutate: func(r *SubmitActivityRequest) { r.Earnings = 0 },
			wantOK: true,
		},
		{
			name:    "negative earnings rejected",
			mutate:  func(r *SubmitActivityRequest) { r.Earnings = -1 },
			wantOK:  false,
			wantKey: "earnings",
		},
		{
			name:    "zero hours rejected",
			mutate:  func(r *SubmitActivityRequest) { r.HoursWorked = 0 },
			wantOK:  false,
			wantKey: "hours_worked",
		},
		{
			name:   "full day accepted",
			mutate: func(r *SubmitActivityRequest) { r.HoursWorked = 24 },
			wantOK: true,
		},
		{
			name:    "over a day rejected",
			mutate:  func(r *SubmitActivityRequest) { r.HoursWorked = 24.5 },
			wantOK:  false,
			wantKey: "hours_worked",
		},
		{
			name:    "rating below range rejected",
			mutate:  func(r *SubmitActivityRequest) { r.SatisfactionRating = 0 },
			wantOK:  false,
			wantKey: "satisfaction_rating",
		},
		{
			name:    "rating above range rejected",
			mutate:  func(r *SubmitActivityRequest) { r.SatisfactionRating = 6 },
			wantOK:  false,
			wantKey: "satisfaction_rating",
		},
		{
			name:   "omitted date accepted",
			mutate: func(r *SubmitActivityRequest) { r.Date = "" },
			wantOK: true,
		},
		{
			name:    "malformed date rejected",
			mutate:  func(r *SubmitActivityRequest) { r.Date = "30-08-2026" },
			wantOK:  false,
			wantKey: "date",
		},
		{
			name:    "empty platform rejected",
			mutate:  func(r *SubmitActivityRequest) { r.PrimaryPlatform = "" },
			wantOK:  false,
			wantKey: "primary_platform",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmit()
			tt.mutate(&req)

			v := validator.New()
			ValidateSubmitActivity(v, &req)

			if v.Valid() != tt.wantOK {
				t.Fatalf("Valid() = %v, want %v (errors: %v)", v.Valid(), tt.wantOK, v.Errors)
			}
			if !tt.wantOK {
				if _, ok := v.Errors[tt.wantKey]; !ok {
					t.Fatalf("expected error on %q, got %v", tt.wantKey, v.Errors)
				}
			}
		})
	}
}
