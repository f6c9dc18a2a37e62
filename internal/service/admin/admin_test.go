package admin

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/internal/domain/types"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

type stubRiderRepo struct {
	profiles []models.RiderProfile
}

func (s *stubRiderRepo) GetByID(_ context.Context, id uuid.UUID) (*models.RiderProfile, error) {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return &s.profiles[i], nil
		}
	}
	return nil, types.ErrRiderNotFound
}

func (s *stubRiderRepo) List(_ context.Context, filters models.Filters) ([]models.RiderProfile, int, error) {
	return s.profiles, len(s.profiles), nil
}

func (s *stubRiderRepo) ListAll(_ context.Context) ([]models.RiderProfile, error) {
	return s.profiles, nil
}

type stubActivityRepo struct {
	activities []models.Activity
}

func (s *stubActivityRepo) ListByRider(_ context.Context, riderID uuid.UUID) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range s.activities {
		if a.RiderProfileID == riderID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubActivityRepo) ListAll(_ context.Context) ([]models.Activity, error) {
	return s.activities, nil
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any)        {}
func (nopLogger) Info(context.Context, string, ...any)         {}
func (nopLogger) Warn(context.Context, string, ...any)         {}
func (nopLogger) Error(context.Context, string, error, ...any) {}
func (nopLogger) GetSlogLogger() *slog.Logger                  { return slog.New(slog.DiscardHandler) }

func TestListRiders_SummariesAndMetadata(t *testing.T) {
	now := time.Now()
	r1, r2 := uuid.New(), uuid.New()

	riders := &stubRiderRepo{profiles: []models.RiderProfile{
		{ID: r1, Name: "Asel", WeeklyGoal: 3000, CreatedAt: now.AddDate(0, -1, 0)},
		{ID: r2, Name: "Bauyrzhan", WeeklyGoal: 4000, CreatedAt: now.AddDate(0, -2, 0)},
	}}
	acts := &stubActivityRepo{activities: []models.Activity{
		{RiderProfileID: r1, Date: now, Earnings: 650, HoursWorked: 8, SatisfactionRating: 4},
		{RiderProfileID: r1, Date: now.AddDate(0, 0, -30), Earnings: 400, HoursWorked: 6, SatisfactionRating: 3},
	}}

	svc := NewAdminService(riders, acts, nopLogger{})

	filters, err := models.NewFilters(1, 20, "created_at", []string{"created_at", "name"})
	if err != nil {
		t.Fatal(err)
	}

	summaries, metadata, err := svc.ListRiders(context.Background(), filters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if metadata.TotalRecords != 2 {
		t.Errorf("expected 2 total records, got %d", metadata.TotalRecords)
	}

	// Current-week earnings only, not lifetime.
	if summaries[0].CurrentEarnings != 650 {
		t.Errorf("expected current earnings 650, got %v", summaries[0].CurrentEarnings)
	}

	// No activities: last active falls back to registration date.
	if !summaries[1].LastActive.Equal(riders.profiles[1].CreatedAt) {
		t.Errorf("expected LastActive to fall back to CreatedAt")
	}
}

func TestRiderStats_UnknownRider(t *testing.T) {
	svc := NewAdminService(&stubRiderRepo{}, &stubActivityRepo{}, nopLogger{})

	if _, err := svc.RiderStats(context.Background(), uuid.New()); err != types.ErrRiderNotFound {
		t.Fatalf("expected ErrRiderNotFound, got %v", err)
	}
}

func TestFleetStats_ActiveWindow(t *testing.T) {
	now := time.Now()
	r1, r2, r3 := uuid.New(), uuid.New(), uuid.New()

	riders := &stubRiderRepo{profiles: []models.RiderProfile{
		{ID: r1, CreatedAt: now.AddDate(0, -1, 0)},
		{ID: r2, CreatedAt: now.AddDate(0, -1, 0)},
		{ID: r3, CreatedAt: now.AddDate(0, -1, 0)},
	}}
	acts := &stubActivityRepo{activities: []models.Activity{
		{RiderProfileID: r1, Date: now.Add(-71 * time.Hour), Earnings: 100, SatisfactionRating: 4},
		{RiderProfileID: r2, Date: now.Add(-73 * time.Hour), Earnings: 200, SatisfactionRating: 2},
	}}

	svc := NewAdminService(riders, acts, nopLogger{})

	fleet, err := svc.FleetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fleet.TotalRiders != 3 {
		t.Errorf("expected 3 riders, got %d", fleet.TotalRiders)
	}
	if fleet.ActiveRiders != 1 {
		t.Errorf("expected 1 active rider (71h counts, 73h does not), got %d", fleet.ActiveRiders)
	}
}

func TestHandleActivityRecorded_RefreshesFleet(t *testing.T) {
	svc := NewAdminService(&stubRiderRepo{}, &stubActivityRepo{}, nopLogger{})

	msg := models.ActivityRecordedMessage{
		ActivityID:     uuid.New(),
		RiderProfileID: uuid.New(),
		Earnings:       500,
	}
	if err := svc.HandleActivityRecorded(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
