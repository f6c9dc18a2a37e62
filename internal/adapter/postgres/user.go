package repo

import (
	"context"
	"errors"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo stores operator accounts for the admin panel.
type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

// CreateUser inserts an operator row. Expects name, email, role and the
// password hash to be set on the model.
func (r *UserRepo) CreateUser(ctx context.Context, u *models.User) (uuid.UUID, error) {
	if u == nil {
		return uuid.UUID{}, errors.New("nil user")
	}

	const q = `
		INSERT INTO users (id, name, email, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;
	`

	id := uuid.New()
	if err := TxorDB(ctx, r.db).QueryRow(
		ctx, q, id, u.Name, u.Email, u.Role, u.GetPassword(),
	).Scan(&u.CreatedAt); err != nil {
		return uuid.UUID{}, err
	}

	u.ID = id
	return id, nil
}

// GetUser fetches by email (unique). Returns (nil, nil) when absent.
func (r *UserRepo) GetUser(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	const q = `
		SELECT id, name, email, role, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1;
	`

	var (
		u            models.User
		passwordHash string
	)
	err := TxorDB(ctx, r.db).QueryRow(ctx, q, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&passwordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	u.SetPassword(passwordHash)
	return &u, nil
}

// GetUserByID fetches by id. Returns (nil, nil) when absent.
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const q = `
		SELECT id, name, email, role, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1;
	`

	var (
		u            models.User
		passwordHash string
	)
	err := TxorDB(ctx, r.db).QueryRow(ctx, q, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&passwordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	u.SetPassword(passwordHash)
	return &u, nil
}
