package rider

import (
	"context"
	"fmt"
	"time"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/internal/domain/types"
	"github.com/Dastan7k/gig-track-system/internal/service/identity"
	"github.com/Dastan7k/gig-track-system/internal/service/stats"
	"github.com/Dastan7k/gig-track-system/pkg/logger"
	wrap "github.com/Dastan7k/gig-track-system/pkg/logger/wrapper"
	"github.com/Dastan7k/gig-track-system/pkg/metrics"
	"github.com/Dastan7k/gig-track-system/pkg/trm"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

const serviceName = "rider"

// RiderService covers onboarding, daily activity submission and the
// weekly earnings dashboard.
type RiderService struct {
	riderRepo    RiderRepo
	activityRepo ActivityRepo
	catalogRepo  CatalogRepo
	producer     ActivityProducer
	trm          trm.TxManager
	log          logger.Logger
}

func NewRiderService(riderRepo RiderRepo, activityRepo ActivityRepo, catalogRepo CatalogRepo, producer ActivityProducer, trm trm.TxManager, log logger.Logger) *RiderService {
	return &RiderService{
		riderRepo:    riderRepo,
		activityRepo: activityRepo,
		catalogRepo:  catalogRepo,
		producer:     producer,
		trm:          trm,
		log:          log,
	}
}

// CreateProfile registers a rider and links the chosen service areas and
// delivery platforms. The profile row and both link sets are written in
// one transaction so a half-registered rider can never be observed.
func (s *RiderService) CreateProfile(ctx context.Context, profile *models.RiderProfile, areaNames, platformNames []string) (*models.RiderProfile, error) {
	ctx = wrap.WithAction(ctx, "create_rider_profile")

	if !identity.IsValidMobile(profile.Phone) {
		return nil, types.ErrInvalidMobile
	}

	taken, err := s.riderRepo.IsPhoneTaken(ctx, profile.Phone)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not check phone: %w", err))
	}
	if taken {
		return nil, types.ErrPhoneAlreadyUsed
	}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		areaIDs, err := s.catalogRepo.AreaIDsByNames(ctx, areaNames)
		if err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not resolve service areas: %w", err))
		}
		if len(areaIDs) != len(areaNames) {
			return types.ErrAreaNotFound
		}

		platformIDs, err := s.catalogRepo.PlatformIDsByNames(ctx, platformNames)
		if err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not resolve platforms: %w", err))
		}
		if len(platformIDs) != len(platformNames) {
			return types.ErrPlatformNotFound
		}

		profile.ID = uuid.New()
		if err := s.riderRepo.Create(ctx, profile); err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not create profile: %w", err))
		}

		if err := s.riderRepo.LinkServiceAreas(ctx, profile.ID, areaIDs); err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not link service areas: %w", err))
		}

		if err := s.riderRepo.LinkPlatforms(ctx, profile.ID, platformIDs); err != nil {
			return wrap.Error(ctx, fmt.Errorf("could not link platforms: %w", err))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RidersRegisteredTotal.WithLabelValues(serviceName).Inc()
	s.log.Info(ctx, "rider profile created", "rider_id", profile.ID.String())

	return profile, nil
}

func (s *RiderService) GetProfile(ctx context.Context, id uuid.UUID) (*models.RiderProfile, error) {
	ctx = wrap.WithAction(ctx, "get_rider_profile")

	profile, err := s.riderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// SubmitActivity stores one day's reported outcome and announces it to
// downstream consumers. The publish is best-effort: a broker outage must
// not lose the rider's record.
func (s *RiderService) SubmitActivity(ctx context.Context, a *models.Activity) error {
	ctx = wrap.WithAction(ctx, "submit_activity")
	ctx = wrap.WithRiderID(ctx, a.RiderProfileID.String())

	if _, err := s.riderRepo.GetByID(ctx, a.RiderProfileID); err != nil {
		return err
	}

	a.ID = uuid.New()
	if err := s.activityRepo.Insert(ctx, a); err != nil {
		return wrap.Error(ctx, fmt.Errorf("could not store activity: %w", err))
	}

	metrics.ActivitiesSubmittedTotal.WithLabelValues(serviceName, a.PrimaryPlatform).Inc()

	if s.producer != nil {
		msg := models.ActivityRecordedMessage{
			ActivityID:         a.ID,
			RiderProfileID:     a.RiderProfileID,
			Date:               a.Date,
			Earnings:           a.Earnings,
			HoursWorked:        a.HoursWorked,
			PrimaryPlatform:    a.PrimaryPlatform,
			SatisfactionRating: a.SatisfactionRating,
			Timestamp:          time.Now().UTC(),
		}
		if err := s.producer.PublishActivityRecorded(ctx, msg); err != nil {
			s.log.Error(ctx, "failed to publish recorded activity", err)
		}
	}

	return nil
}

// WeeklyStats computes the rider's statistics over the current week.
func (s *RiderService) WeeklyStats(ctx context.Context, riderID uuid.UUID) (models.WeeklyStats, error) {
	ctx = wrap.WithAction(ctx, "weekly_stats")

	activities, err := s.activityRepo.ListByRider(ctx, riderID)
	if err != nil {
		return models.WeeklyStats{}, wrap.Error(ctx, fmt.Errorf("could not load activities: %w", err))
	}

	return stats.Weekly(activities, time.Now()), nil
}

// Dashboard assembles the rider's weekly earnings screen: profile, weekly
// stats, progress toward the weekly goal and the best-earning platform.
func (s *RiderService) Dashboard(ctx context.Context, riderID uuid.UUID) (*models.Dashboard, error) {
	ctx = wrap.WithAction(ctx, "rider_dashboard")

	profile, err := s.riderRepo.GetByID(ctx, riderID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListByRider(ctx, riderID)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("could not load activities: %w", err))
	}

	weekly := stats.Weekly(activities, time.Now())

	dash := &models.Dashboard{
		Profile:      *profile,
		Weekly:       weekly,
		GoalProgress: stats.GoalProgress(weekly.TotalEarnings, profile.WeeklyGoal),
	}

	if top, ok := stats.TopPlatform(weekly.Activities); ok {
		dash.TopPlatform = &top
	}

	return dash, nil
}

func (s *RiderService) ListServiceAreas(ctx context.Context) ([]models.ServiceArea, error) {
	return s.catalogRepo.ListServiceAreas(ctx)
}

func (s *RiderService) ListPlatforms(ctx context.Context) ([]models.DeliveryPlatform, error) {
	return s.catalogRepo.ListPlatforms(ctx)
}
