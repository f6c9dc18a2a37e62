package rider

import (
	"context"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

type RiderRepo interface {
	Create(ctx context.Context, profile *models.RiderProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RiderProfile, error)
	IsPhoneTaken(ctx context.Context, phone string) (bool, error)
	LinkServiceAreas(ctx context.Context, riderID uuid.UUID, areaIDs []uuid.UUID) error
	LinkPlatforms(ctx context.Context, riderID uuid.UUID, platformIDs []uuid.UUID) error
}

type ActivityRepo interface {
	Insert(ctx context.Context, a *models.Activity) error
	ListByRider(ctx context.Context, riderID uuid.UUID) ([]models.Activity, error)
}

type CatalogRepo interface {
	ListServiceAreas(ctx context.Context) ([]models.ServiceArea, error)
	ListPlatforms(ctx context.Context) ([]models.DeliveryPlatform, error)
	AreaIDsByNames(ctx context.Context, names []string) ([]uuid.UUID, error)
	PlatformIDsByNames(ctx context.Context, names []string) ([]uuid.UUID, error)
}

type ActivityProducer interface {
	PublishActivityRecorded(ctx context.Context, msg models.ActivityRecordedMessage) error
}
