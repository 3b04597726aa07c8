package repository

import (
	"context"
	"time"

	"plantapp/internal/domain/entity"
)

// GardenPlant is one row of a user's garden listing: the plant joined with
// the relationship's watering dates.
type GardenPlant struct {
	Plant        entity.Plant
	LastWatered  *time.Time
	NextWatering *time.Time
}

// DueReminder is one row of the reminder scan: a due relationship joined
// with its owner and plant.
type DueReminder struct {
	UserID       int64
	PlantID      int64
	UserName     string
	Email        string
	PlantName    string
	NextWatering *time.Time
}

// UserPlantRepository defines the interface for the user-plant relationship.
type UserPlantRepository interface {
	Create(ctx context.Context, up *entity.UserPlant) error
	Get(ctx context.Context, userID, plantID int64) (*entity.UserPlant, error)
	// GetWithPlant loads the relationship together with its plant in one query.
	GetWithPlant(ctx context.Context, userID, plantID int64) (*entity.UserPlant, *entity.Plant, error)
	Delete(ctx context.Context, userID, plantID int64) error
	// UpdateWateringDates sets both schedule fields of a single relationship
	// atomically.
	UpdateWateringDates(ctx context.Context, userID, plantID int64, lastWatered, nextWatering time.Time) error
	ListByUser(ctx context.Context, userID int64) ([]GardenPlant, error)
	// ListDue returns every relationship whose next watering date is unset or
	// not after the given day, joined with user and plant.
	ListDue(ctx context.Context, today time.Time) ([]DueReminder, error)
}
