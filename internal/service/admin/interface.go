package admin

import (
	"context"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

type RiderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.RiderProfile, error)
	List(ctx context.Context, filters models.Filters) ([]models.RiderProfile, int, error)
	ListAll(ctx context.Context) ([]models.RiderProfile, error)
}

type ActivityRepo interface {
	ListByRider(ctx context.Context, riderID uuid.UUID) ([]models.Activity, error)
	ListAll(ctx context.Context) ([]models.Activity, error)
}
