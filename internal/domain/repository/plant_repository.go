package repository

import (
	"context"

	"plantapp/internal/domain/entity"
)

// PlantRepository defines the interface for the locally cached plant catalog.
type PlantRepository interface {
	Create(ctx context.Context, p *entity.Plant) error
	GetByID(ctx context.Context, id int64) (*entity.Plant, error)
	GetByPermapeopleID(ctx context.Context, permapeopleID int64) (*entity.Plant, error)
	List(ctx context.Context) ([]entity.Plant, error)
	Delete(ctx context.Context, id int64) error
}
