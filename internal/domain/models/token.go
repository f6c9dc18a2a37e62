package models

import (
	"time"

	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessToken  = "access"
	RefreshToken = "refresh"
)

func IsValidTokenType(typ string) bool {
	return typ == AccessToken || typ == RefreshToken
}

// CustomClaims is the parsed JWT payload used across services.
type CustomClaims struct {
	UserID    uuid.UUID
	TokenID   uuid.UUID
	TokenType string
	Email     string
	Role      string
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// RefreshTokenRecord is the server-side state of an issued refresh token.
// Only the hash of the token is stored.
type RefreshTokenRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
