package repo

import (
	"context"
	"fmt"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepo reads the reference tables: service areas and delivery
// platforms. Rows are seeded by migrations, never written from here.
type CatalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepo(db *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{
		db: db,
	}
}

func (r *CatalogRepo) ListServiceAreas(ctx context.Context) ([]models.ServiceArea, error) {
	const op = "CatalogRepo.ListServiceAreas"
	query := `
		SELECT id, name, created_at
		FROM service_areas
		ORDER BY name`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	defer rows.Close()

	areas := []models.ServiceArea{}
	for rows.Next() {
		var a models.ServiceArea
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %v", op, err)
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	return areas, nil
}

func (r *CatalogRepo) ListPlatforms(ctx context.Context) ([]models.DeliveryPlatform, error) {
	const op = "CatalogRepo.ListPlatforms"
	query := `
		SELECT id, name, category, created_at
		FROM delivery_platforms
		ORDER BY category, name`

	rows, err := TxorDB(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	defer rows.Close()

	platforms := []models.DeliveryPlatform{}
	for rows.Next() {
		var p models.DeliveryPlatform
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %v", op, err)
		}
		platforms = append(platforms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	return platforms, nil
}

// AreaIDsByNames resolves service area names to ids. Row order is
// unspecified; callers compare counts, not positions.
func (r *CatalogRepo) AreaIDsByNames(ctx context.Context, names []string) ([]uuid.UUID, error) {
	const op = "CatalogRepo.AreaIDsByNames"
	query := `
		SELECT id FROM service_areas
		WHERE name = ANY($1)`

	return r.idsByNames(ctx, op, query, names)
}

// PlatformIDsByNames resolves delivery platform names to ids.
func (r *CatalogRepo) PlatformIDsByNames(ctx context.Context, names []string) ([]uuid.UUID, error) {
	const op = "CatalogRepo.PlatformIDsByNames"
	query := `
		SELECT id FROM delivery_platforms
		WHERE name = ANY($1)`

	return r.idsByNames(ctx, op, query, names)
}

func (r *CatalogRepo) idsByNames(ctx context.Context, op, query string, names []string) ([]uuid.UUID, error) {
	if len(names) == 0 {
		return nil, nil
	}

	rows, err := TxorDB(ctx, r.db).Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %v", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	return ids, nil
}
