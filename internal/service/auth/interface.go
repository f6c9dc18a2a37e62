package auth

import (
	"context"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) (uuid.UUID, error)
	GetUser(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type RefreshTokenRepo interface {
	Save(ctx context.Context, rec *models.RefreshTokenRecord) error
	Get(ctx context.Context, userID uuid.UUID) (*models.RefreshTokenRecord, error)
	Revoke(ctx context.Context, userID uuid.UUID) error
}

type TokenProvider interface {
	GenerateTokens(ctx context.Context, user *models.User) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Validate(ctx context.Context, token string) (*models.CustomClaims, error)
}
