package repo

import (
	"context"
	"fmt"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepo struct {
	db *pgxpool.Pool
}

func NewActivityRepo(db *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{
		db: db,
	}
}

func (r *ActivityRepo) Insert(ctx context.Context, a *models.Activity) error {
	const op = "ActivityRepo.Insert"
	query := `
		INSERT INTO daily_activities(id, rider_profile_id, activity_date, earnings, hours_worked, primary_platform, satisfaction_rating)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	if err := TxorDB(ctx, r.db).QueryRow(ctx, query,
		a.ID,
		a.RiderProfileID,
		a.Date,
		a.Earnings,
		a.HoursWorked,
		a.PrimaryPlatform,
		a.SatisfactionRating,
	).Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("%s: %v", op, err)
	}

	return nil
}

// ListByRider returns all of a rider's activities, most recent first.
func (r *ActivityRepo) ListByRider(ctx context.Context, riderID uuid.UUID) ([]models.Activity, error) {
	const op = "ActivityRepo.ListByRider"
	query := `
		SELECT id, rider_profile_id, activity_date, earnings, hours_worked, primary_platform, satisfaction_rating, created_at
		FROM daily_activities
		WHERE rider_profile_id = $1
		ORDER BY activity_date DESC, created_at DESC`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query, riderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(
			&a.ID,
			&a.RiderProfileID,
			&a.Date,
			&a.Earnings,
			&a.HoursWorked,
			&a.PrimaryPlatform,
			&a.SatisfactionRating,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %v", op, err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	return activities, nil
}

// ListAll returns every rider's activities, most recent first.
// The fleet view groups them per rider in memory.
func (r *ActivityRepo) ListAll(ctx context.Context) ([]models.Activity, error) {
	const op = "ActivityRepo.ListAll"
	query := `
		SELECT id, rider_profile_id, activity_date, earnings, hours_worked, primary_platform, satisfaction_rating, created_at
		FROM daily_activities
		ORDER BY activity_date DESC, created_at DESC`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(
			&a.ID,
			&a.RiderProfileID,
			&a.Date,
			&a.Earnings,
			&a.HoursWorked,
			&a.PrimaryPlatform,
			&a.SatisfactionRating,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %v", op, err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	return activities, nil
}
