package entity

import (
	"time"
)

// Plant is catalog metadata cached locally, deduplicated by PermapeopleID.
// WaterRequirement and LightRequirement are loosely-typed labels taken from
// the external catalog as-is.
type Plant struct {
	ID               int64
	PermapeopleID    int64
	Name             string
	ImageURL         string
	WaterRequirement string
	LightRequirement string
	CreatedAt        time.Time
}
