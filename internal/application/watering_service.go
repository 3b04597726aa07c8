package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"plantapp/internal/domain/repository"
)

var (
	// ErrPlantNotInGarden is returned when a (user, plant) relationship does
	// not exist.
	ErrPlantNotInGarden = errors.New("plant not in garden")
	// ErrAlreadyInGarden is returned when a user adds a plant they already own.
	ErrAlreadyInGarden = errors.New("plant already in garden")
	// ErrPlantNotFound is returned when the external catalog has no plant for
	// the given reference id.
	ErrPlantNotFound = errors.New("plant not found")
)

// WateringService applies the watering policy when an owner waters a plant.
type WateringService struct {
	Relationships repository.UserPlantRepository
	Clock         clockwork.Clock
	Logger        *logrus.Logger
}

func NewWateringService(relationships repository.UserPlantRepository, clock clockwork.Clock, logger *logrus.Logger) *WateringService {
	return &WateringService{Relationships: relationships, Clock: clock, Logger: logger}
}

// WaterPlantResult echoes the new schedule state back to the client.
type WaterPlantResult struct {
	LastWatered      time.Time `json:"last_watered"`
	NextWatering     time.Time `json:"next_watering"`
	WaterRequirement string    `json:"water_requirement"`
}

// WaterPlant records today as the relationship's last watering and derives
// the next due date from the plant's water requirement. Both fields are
// persisted in one update. No notification is sent here; watering only moves
// schedule state.
func (s *WateringService) WaterPlant(ctx context.Context, userID, plantID int64) (*WaterPlantResult, error) {
	_, plant, err := s.Relationships.GetWithPlant(ctx, userID, plantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlantNotInGarden
		}
		s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": userID, "plant_id": plantID}).Error("load relationship failed")
		return nil, fmt.Errorf("load relationship: %w", err)
	}

	today := DateOf(s.Clock.Now())
	next := NextWateringDate(plant.WaterRequirement, today)

	if err := s.Relationships.UpdateWateringDates(ctx, userID, plantID, today, next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Relationship removed between the read and the write.
			return nil, ErrPlantNotInGarden
		}
		s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": userID, "plant_id": plantID}).Error("update watering dates failed")
		return nil, fmt.Errorf("update watering dates: %w", err)
	}

	return &WaterPlantResult{
		LastWatered:      today,
		NextWatering:     next,
		WaterRequirement: plant.WaterRequirement,
	}, nil
}
