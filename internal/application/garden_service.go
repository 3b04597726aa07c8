package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"plantapp/internal/domain/entity"
	"plantapp/internal/domain/repository"
	"plantapp/internal/infrastructure/catalog"
)

// CatalogClient resolves an external plant reference to its metadata. A nil
// plant with nil error means the catalog has no such plant.
type CatalogClient interface {
	GetPlantByID(ctx context.Context, id int64) (*catalog.Plant, error)
}

// GardenService manages which plants belong to a user's garden.
type GardenService struct {
	Plants        repository.PlantRepository
	Relationships repository.UserPlantRepository
	Catalog       CatalogClient
	Clock         clockwork.Clock
	Logger        *logrus.Logger
}

func NewGardenService(plants repository.PlantRepository, relationships repository.UserPlantRepository, cat CatalogClient, clock clockwork.Clock, logger *logrus.Logger) *GardenService {
	return &GardenService{Plants: plants, Relationships: relationships, Catalog: cat, Clock: clock, Logger: logger}
}

// AddPlant puts the plant with the given catalog reference into the user's
// garden. The plant row is created on first reference, deduplicated by its
// catalog id; the new relationship starts with no watering state. A second
// add of the same plant is rejected with ErrAlreadyInGarden.
func (s *GardenService) AddPlant(ctx context.Context, userID, catalogID int64) (*entity.Plant, error) {
	plant, err := s.Plants.GetByPermapeopleID(ctx, catalogID)
	if errors.Is(err, repository.ErrNotFound) {
		plant, err = s.createFromCatalog(ctx, catalogID)
	}
	if err != nil {
		return nil, err
	}

	up := &entity.UserPlant{UserID: userID, PlantID: plant.ID}
	if err := s.Relationships.Create(ctx, up); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyInGarden
		}
		s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": userID, "plant_id": plant.ID}).Error("create relationship failed")
		return nil, fmt.Errorf("create relationship: %w", err)
	}
	return plant, nil
}

func (s *GardenService) createFromCatalog(ctx context.Context, catalogID int64) (*entity.Plant, error) {
	cp, err := s.Catalog.GetPlantByID(ctx, catalogID)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}
	if cp == nil {
		return nil, ErrPlantNotFound
	}

	plant := &entity.Plant{
		PermapeopleID:    catalogID,
		Name:             cp.Name,
		ImageURL:         cp.ImageURL,
		WaterRequirement: cp.WaterRequirement,
		LightRequirement: cp.LightRequirement,
	}
	if err := s.Plants.Create(ctx, plant); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Another request cached the same catalog plant first.
			return s.Plants.GetByPermapeopleID(ctx, catalogID)
		}
		return nil, fmt.Errorf("create plant: %w", err)
	}
	return plant, nil
}

// RemovePlant deletes the relationship; the plant row itself stays cached for
// other owners.
func (s *GardenService) RemovePlant(ctx context.Context, userID, plantID int64) error {
	if err := s.Relationships.Delete(ctx, userID, plantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlantNotInGarden
		}
		return err
	}
	return nil
}

// ListPlants returns every plant cached locally, across all gardens.
func (s *GardenService) ListPlants(ctx context.Context) ([]entity.Plant, error) {
	plants, err := s.Plants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	return plants, nil
}

// GetPlant looks up a cached plant by its local id.
func (s *GardenService) GetPlant(ctx context.Context, id int64) (*entity.Plant, error) {
	p, err := s.Plants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlantNotFound
		}
		return nil, err
	}
	return p, nil
}

// DeletePlant removes a cached plant; every garden relationship pointing at it
// goes with it via the cascade.
func (s *GardenService) DeletePlant(ctx context.Context, id int64) error {
	if err := s.Plants.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlantNotFound
		}
		s.Logger.WithError(err).WithField("plant_id", id).Error("delete plant failed")
		return err
	}
	return nil
}

// GardenEntry is the client view of one plant in a garden, including the
// derived needs_watering flag.
type GardenEntry struct {
	ID               int64      `json:"id"`
	PermapeopleID    int64      `json:"permapeople_id"`
	Name             string     `json:"name"`
	ImageURL         string     `json:"image_url"`
	WaterRequirement string     `json:"water_requirement"`
	LightRequirement string     `json:"light_requirement"`
	LastWatered      *time.Time `json:"last_watered"`
	NextWatering     *time.Time `json:"next_watering"`
	NeedsWatering    bool       `json:"needs_watering"`
}

// ListGarden returns every plant in the user's garden with its watering state.
func (s *GardenService) ListGarden(ctx context.Context, userID int64) ([]GardenEntry, error) {
	rows, err := s.Relationships.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list garden: %w", err)
	}

	today := DateOf(s.Clock.Now())
	out := make([]GardenEntry, 0, len(rows))
	for _, row := range rows {
		rel := entity.UserPlant{LastWatered: row.LastWatered, NextWatering: row.NextWatering}
		out = append(out, GardenEntry{
			ID:               row.Plant.ID,
			PermapeopleID:    row.Plant.PermapeopleID,
			Name:             row.Plant.Name,
			ImageURL:         row.Plant.ImageURL,
			WaterRequirement: row.Plant.WaterRequirement,
			LightRequirement: row.Plant.LightRequirement,
			LastWatered:      row.LastWatered,
			NextWatering:     row.NextWatering,
			NeedsWatering:    rel.NeedsWatering(today),
		})
	}
	return out, nil
}
