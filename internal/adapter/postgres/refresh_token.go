package repo

import (
	"context"
	"errors"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RefreshTokenRepo keeps hashed refresh tokens, one active row per user.
type RefreshTokenRepo struct {
	db *pgxpool.Pool
}

func NewRefreshTokenRepo(db *pgxpool.Pool) *RefreshTokenRepo {
	return &RefreshTokenRepo{
		db: db,
	}
}

// Save upserts the user's refresh token. Rotation replaces the previous
// hash and clears the revoked flag.
func (r *RefreshTokenRepo) Save(ctx context.Context, rec *models.RefreshTokenRecord) error {
	if rec == nil {
		return errors.New("nil refresh token record")
	}

	const q = `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, revoked)
		VALUES ($1, $2, $3, $4, false)
		ON CONFLICT (user_id) DO UPDATE SET
			token_hash = EXCLUDED.token_hash,
			expires_at = EXCLUDED.expires_at,
			revoked    = false;
	`

	rec.ID = uuid.New()
	_, err := TxorDB(ctx, r.db).Exec(ctx, q, rec.ID, rec.UserID, rec.TokenHash, rec.ExpiresAt)
	return err
}

// Get returns the stored record for a user. (nil, nil) when absent.
func (r *RefreshTokenRepo) Get(ctx context.Context, userID uuid.UUID) (*models.RefreshTokenRecord, error) {
	const q = `
		SELECT id, user_id, token_hash, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE user_id = $1;
	`

	var rec models.RefreshTokenRecord
	err := TxorDB(ctx, r.db).QueryRow(ctx, q, userID).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.TokenHash,
		&rec.ExpiresAt,
		&rec.Revoked,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rec, nil
}

// Revoke marks the user's refresh token unusable without deleting the row.
func (r *RefreshTokenRepo) Revoke(ctx context.Context, userID uuid.UUID) error {
	const q = `
		UPDATE refresh_tokens
		SET revoked = true
		WHERE user_id = $1;
	`

	_, err := TxorDB(ctx, r.db).Exec(ctx, q, userID)
	return err
}
