package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/internal/service/stats"
	"github.com/Dastan7k/gig-track-system/pkg/logger"
	wrap "github.com/Dastan7k/gig-track-system/pkg/logger/wrapper"
	"github.com/Dastan7k/gig-track-system/pkg/metrics"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

const serviceName = "admin"

// AdminService serves the ops panel: per-rider summaries and the fleet
// rollup.
type AdminService struct {
	riderRepo    RiderRepo
	activityRepo ActivityRepo
	l            logger.Logger
}

func NewAdminService(riderRepo RiderRepo, activityRepo ActivityRepo, l logger.Logger) *AdminService {
	return &AdminService{
		riderRepo:    riderRepo,
		activityRepo: activityRepo,
		l:            l,
	}
}

// ListRiders returns a page of rider profiles, each enriched with derived
// statistics. Activities are loaded once for the whole page and grouped
// in memory, not queried per rider.
func (s *AdminService) ListRiders(ctx context.Context, filters models.Filters) ([]models.RiderSummary, models.Metadata, error) {
	ctx = wrap.WithAction(ctx, "list_riders")

	profiles, total, err := s.riderRepo.List(ctx, filters)
	if err != nil {
		return nil, models.Metadata{}, wrap.Error(ctx, fmt.Errorf("could not list riders: %w", err))
	}

	byRider, err := s.activitiesByRider(ctx)
	if err != nil {
		return nil, models.Metadata{}, wrap.Error(ctx, err)
	}

	now := time.Now()
	summaries := make([]models.RiderSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, stats.Summarize(p, byRider[p.ID], now))
	}

	metadata := models.CalculateMetadata(total, filters.Page, filters.PageSize)
	return summaries, metadata, nil
}

// RiderStats returns the derived summary for a single rider.
func (s *AdminService) RiderStats(ctx context.Context, riderID uuid.UUID) (*models.RiderSummary, error) {
	ctx = wrap.WithAction(ctx, "rider_stats")
	ctx = wrap.WithRiderID(ctx, riderID.String())

	profile, err := s.riderRepo.GetByID(ctx, riderID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListByRider(ctx, riderID)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not load activities: %w", err))
	}

	summary := stats.Summarize(*profile, activities, time.Now())
	return &summary, nil
}

// FleetStats rolls the whole rider population up for the ops overview and
// refreshes the exported fleet gauges with the result.
func (s *AdminService) FleetStats(ctx context.Context) (models.FleetStats, error) {
	ctx = wrap.WithAction(ctx, "fleet_stats")

	profiles, err := s.riderRepo.ListAll(ctx)
	if err != nil {
		return models.FleetStats{}, wrap.Error(ctx, fmt.Errorf("could not list riders: %w", err))
	}

	byRider, err := s.activitiesByRider(ctx)
	if err != nil {
		return models.FleetStats{}, wrap.Error(ctx, err)
	}

	now := time.Now()
	summaries := make([]models.RiderSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, stats.Summarize(p, byRider[p.ID], now))
	}

	fleet := stats.Fleet(summaries, now)

	metrics.FleetActiveRidersGauge.WithLabelValues(serviceName).Set(float64(fleet.ActiveRiders))
	metrics.FleetWeeklyEarningsGauge.WithLabelValues(serviceName).Set(fleet.TotalEarnings)

	return fleet, nil
}

// HandleActivityRecorded reacts to a recorded-activity event by refreshing
// the fleet gauges, so the exported numbers track submissions without
// anyone opening the overview page.
func (s *AdminService) HandleActivityRecorded(ctx context.Context, msg models.ActivityRecordedMessage) error {
	ctx = wrap.WithAction(ctx, "handle_activity_recorded")

	s.l.Info(ctx, "activity recorded",
		"rider_id", msg.RiderProfileID.String(),
		"platform", msg.PrimaryPlatform,
		"earnings", msg.Earnings,
	)

	if _, err := s.FleetStats(ctx); err != nil {
		return err
	}
	return nil
}

// activitiesByRider loads every activity and groups them by rider,
// preserving the store's most-recent-first order within each group.
func (s *AdminService) activitiesByRider(ctx context.Context) (map[uuid.UUID][]models.Activity, error) {
	activities, err := s.activityRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load activities: %w", err)
	}

	byRider := make(map[uuid.UUID][]models.Activity)
	for _, a := range activities {
		byRider[a.RiderProfileID] = append(byRider[a.RiderProfileID], a)
	}
	return byRider, nil
}
