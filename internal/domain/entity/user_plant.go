package entity

import (
	"time"
)

// UserPlant is the join entity between a user and a plant in their garden.
// LastWatered is nil until the plant has been watered at least once through
// this relationship; NextWatering, when set, is always after LastWatered.
type UserPlant struct {
	UserID       int64
	PlantID      int64
	LastWatered  *time.Time
	NextWatering *time.Time
	CreatedAt    time.Time
}

// NeedsWatering reports whether the relationship is due on the given day:
// no next watering recorded yet, or the recorded date has arrived or passed.
func (up *UserPlant) NeedsWatering(today time.Time) bool {
	if up.NextWatering == nil {
		return true
	}
	return !today.Before(*up.NextWatering)
}
