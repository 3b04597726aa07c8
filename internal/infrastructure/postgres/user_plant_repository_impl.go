package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"plantapp/internal/domain/entity"
	"plantapp/internal/domain/repository"
)

type UserPlantRepository struct {
	pool *pgxpool.Pool
}

func NewUserPlantRepository(pool *pgxpool.Pool) *UserPlantRepository {
	return &UserPlantRepository{pool: pool}
}

func (r *UserPlantRepository) Create(ctx context.Context, up *entity.UserPlant) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO user_plants (user_id, plant_id, last_watered, next_watering)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, up.UserID, up.PlantID, up.LastWatered, up.NextWatering)

	if err := row.Scan(&up.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserPlantRepository) Get(ctx context.Context, userID, plantID int64) (*entity.UserPlant, error) {
	up := &entity.UserPlant{}
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, plant_id, last_watered, next_watering, created_at
		FROM user_plants
		WHERE user_id = $1 AND plant_id = $2
	`, userID, plantID)

	if err := row.Scan(&up.UserID, &up.PlantID, &up.LastWatered, &up.NextWatering, &up.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return up, nil
}

func (r *UserPlantRepository) GetWithPlant(ctx context.Context, userID, plantID int64) (*entity.UserPlant, *entity.Plant, error) {
	up := &entity.UserPlant{}
	p := &entity.Plant{}
	row := r.pool.QueryRow(ctx, `
		SELECT up.user_id, up.plant_id, up.last_watered, up.next_watering, up.created_at,
		       p.id, p.permapeople_id, p.name, p.image_url, p.water_requirement, p.light_requirement, p.created_at
		FROM user_plants up
		JOIN plants p ON p.id = up.plant_id
		WHERE up.user_id = $1 AND up.plant_id = $2
	`, userID, plantID)

	if err := row.Scan(
		&up.UserID, &up.PlantID, &up.LastWatered, &up.NextWatering, &up.CreatedAt,
		&p.ID, &p.PermapeopleID, &p.Name, &p.ImageURL, &p.WaterRequirement, &p.LightRequirement, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, repository.ErrNotFound
		}
		return nil, nil, err
	}
	return up, p, nil
}

func (r *UserPlantRepository) Delete(ctx context.Context, userID, plantID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM user_plants WHERE user_id = $1 AND plant_id = $2
	`, userID, plantID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateWateringDates writes both schedule fields in a single statement so a
// watering action is atomic at the row level.
func (r *UserPlantRepository) UpdateWateringDates(ctx context.Context, userID, plantID int64, lastWatered, nextWatering time.Time) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE user_plants
		SET last_watered = $3, next_watering = $4
		WHERE user_id = $1 AND plant_id = $2
	`, userID, plantID, lastWatered, nextWatering)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserPlantRepository) ListByUser(ctx context.Context, userID int64) ([]repository.GardenPlant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.permapeople_id, p.name, p.image_url, p.water_requirement, p.light_requirement, p.created_at,
		       up.last_watered, up.next_watering
		FROM user_plants up
		JOIN plants p ON p.id = up.plant_id
		WHERE up.user_id = $1
		ORDER BY p.name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]repository.GardenPlant, 0)
	for rows.Next() {
		var gp repository.GardenPlant
		if err := rows.Scan(
			&gp.Plant.ID, &gp.Plant.PermapeopleID, &gp.Plant.Name, &gp.Plant.ImageURL,
			&gp.Plant.WaterRequirement, &gp.Plant.LightRequirement, &gp.Plant.CreatedAt,
			&gp.LastWatered, &gp.NextWatering,
		); err != nil {
			return nil, err
		}
		out = append(out, gp)
	}
	return out, rows.Err()
}

func (r *UserPlantRepository) ListDue(ctx context.Context, today time.Time) ([]repository.DueReminder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT up.user_id, up.plant_id, u.name, u.email, p.name, up.next_watering
		FROM user_plants up
		JOIN users u ON u.id = up.user_id
		JOIN plants p ON p.id = up.plant_id
		WHERE up.next_watering IS NULL OR up.next_watering <= $1
	`, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]repository.DueReminder, 0)
	for rows.Next() {
		var d repository.DueReminder
		if err := rows.Scan(&d.UserID, &d.PlantID, &d.UserName, &d.Email, &d.PlantName, &d.NextWatering); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

var _ repository.UserPlantRepository = (*UserPlantRepository)(nil)
