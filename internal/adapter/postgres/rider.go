package repo

import (
	"context"
	"fmt"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/internal/domain/types"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RiderRepo struct {
	db *pgxpool.Pool
}

func NewRiderRepo(db *pgxpool.Pool) *RiderRepo {
	return &RiderRepo{
		db: db,
	}
}

func (r *RiderRepo) Create(ctx context.Context, profile *models.RiderProfile) error {
	const op = "RiderRepo.Create"
	query := `
		INSERT INTO rider_profiles(id, name, age, phone, weekly_goal, hours_per_day)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	if err := TxorDB(ctx, r.db).QueryRow(ctx, query,
		profile.ID,
		profile.Name,
		profile.Age,
		profile.Phone,
		profile.WeeklyGoal,
		profile.HoursPerDay,
	).Scan(&profile.CreatedAt); err != nil {
		return fmt.Errorf("%s: %v", op, err)
	}

	return nil
}

func (r *RiderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.RiderProfile, error) {
	const op = "RiderRepo.GetByID"
	query := `
		SELECT id, name, age, phone, weekly_goal, hours_per_day, created_at, updated_at
		FROM rider_profiles
		WHERE id = $1`

	var p models.RiderProfile
	if err := TxorDB(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Phone,
		&p.WeeklyGoal,
		&p.HoursPerDay,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, types.ErrRiderNotFound
		}
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	return &p, nil
}

// IsPhoneTaken checks rider uniqueness by mobile number
func (r *RiderRepo) IsPhoneTaken(ctx context.Context, phone string) (bool, error) {
	const op = "RiderRepo.IsPhoneTaken"
	query := `
		SELECT EXISTS(
			SELECT 1 FROM rider_profiles
			WHERE phone = $1
		)`

	var exist bool
	if err := TxorDB(ctx, r.db).QueryRow(ctx, query, phone).Scan(&exist); err != nil {
		return false, fmt.Errorf("%s: %v", op, err)
	}

	return exist, nil
}

// List returns rider profiles ordered and paginated per filters, newest
// first by default, with the total count for pagination metadata.
func (r *RiderRepo) List(ctx context.Context, filters models.Filters) ([]models.RiderProfile, int, error) {
	const op = "RiderRepo.List"
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, name, age, phone, weekly_goal, hours_per_day, created_at, updated_at
		FROM rider_profiles
		ORDER BY %s %s, id ASC
		LIMIT $1 OFFSET $2`, filters.SortColumn(), filters.SortDirection())

	rows, err := TxorDB(ctx, r.db).Query(ctx, query, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %v", op, err)
	}
	defer rows.Close()

	var total int
	profiles := []models.RiderProfile{}
	for rows.Next() {
		var p models.RiderProfile
		if err := rows.Scan(
			&total,
			&p.ID,
			&p.Name,
			&p.Age,
			&p.Phone,
			&p.WeeklyGoal,
			&p.HoursPerDay,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("%s: %v", op, err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %v", op, err)
	}

	return profiles, total, nil
}

// ListAll returns every rider profile, oldest first. Used by the fleet
// rollup, which needs the full population.
func (r *RiderRepo) ListAll(ctx context.Context) ([]models.RiderProfile, error) {
	const op = "RiderRepo.ListAll"
	query := `
		SELECT id, name, age, phone, weekly_goal, hours_per_day, created_at, updated_at
		FROM rider_profiles
		ORDER BY created_at ASC, id ASC`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	defer rows.Close()

	profiles := []models.RiderProfile{}
	for rows.Next() {
		var p models.RiderProfile
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Age,
			&p.Phone,
			&p.WeeklyGoal,
			&p.HoursPerDay,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %v", op, err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	return profiles, nil
}

// LinkServiceAreas attaches the rider to the named service areas.
func (r *RiderRepo) LinkServiceAreas(ctx context.Context, riderID uuid.UUID, areaIDs []uuid.UUID) error {
	const op = "RiderRepo.LinkServiceAreas"
	query := `
		INSERT INTO rider_service_areas(rider_profile_id, service_area_id)
		VALUES($1, $2)
		ON CONFLICT DO NOTHING`

	for _, areaID := range areaIDs {
		if _, err := TxorDB(ctx, r.db).Exec(ctx, query, riderID, areaID); err != nil {
			return fmt.Errorf("%s: %v", op, err)
		}
	}

	return nil
}

// LinkPlatforms attaches the rider to the named delivery platforms.
func (r *RiderRepo) LinkPlatforms(ctx context.Context, riderID uuid.UUID, platformIDs []uuid.UUID) error {
	const op = "RiderRepo.LinkPlatforms"
	query := `
		INSERT INTO rider_platforms(rider_profile_id, platform_id)
		VALUES($1, $2)
		ON CONFLICT DO NOTHING`

	for _, platformID := range platformIDs {
		if _, err := TxorDB(ctx, r.db).Exec(ctx, query, riderID, platformID); err != nil {
			return fmt.Errorf("%s: %v", op, err)
		}
	}

	return nil
}
