package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"plantapp/internal/domain/entity"
	"plantapp/internal/domain/repository"
)

type PlantRepository struct {
	pool *pgxpool.Pool
}

func NewPlantRepository(pool *pgxpool.Pool) *PlantRepository {
	return &PlantRepository{pool: pool}
}

func (r *PlantRepository) Create(ctx context.Context, p *entity.Plant) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO plants (permapeople_id, name, image_url, water_requirement, light_requirement)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, p.PermapeopleID, p.Name, p.ImageURL, p.WaterRequirement, p.LightRequirement)

	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PlantRepository) GetByID(ctx context.Context, id int64) (*entity.Plant, error) {
	return r.get(ctx, `
		SELECT id, permapeople_id, name, image_url, water_requirement, light_requirement, created_at
		FROM plants
		WHERE id = $1
	`, id)
}

func (r *PlantRepository) GetByPermapeopleID(ctx context.Context, permapeopleID int64) (*entity.Plant, error) {
	return r.get(ctx, `
		SELECT id, permapeople_id, name, image_url, water_requirement, light_requirement, created_at
		FROM plants
		WHERE permapeople_id = $1
	`, permapeopleID)
}

func (r *PlantRepository) get(ctx context.Context, query string, arg any) (*entity.Plant, error) {
	p := &entity.Plant{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&p.ID, &p.PermapeopleID, &p.Name, &p.ImageURL,
		&p.WaterRequirement, &p.LightRequirement, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlantRepository) List(ctx context.Context) ([]entity.Plant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, permapeople_id, name, image_url, water_requirement, light_requirement, created_at
		FROM plants
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Plant, 0)
	for rows.Next() {
		var p entity.Plant
		if err := rows.Scan(&p.ID, &p.PermapeopleID, &p.Name, &p.ImageURL,
			&p.WaterRequirement, &p.LightRequirement, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a plant; dependent user_plants rows go with it via
// ON DELETE CASCADE.
func (r *PlantRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PlantRepository = (*PlantRepository)(nil)
