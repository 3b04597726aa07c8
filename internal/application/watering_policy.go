package application

import (
	"strings"
	"time"
)

// DefaultWaterRequirement is assumed when the catalog supplies no water
// requirement for a plant.
const DefaultWaterRequirement = "Moist"

// DateOf truncates a moment to its calendar day. Watering state is kept at
// day granularity; the DATE columns round-trip as UTC midnights.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextWateringDate maps a catalog water-requirement class to the date a plant
// watered on the given day needs water again. The classes are free-text
// catalog data, so anything unrecognized falls back to a seven-day interval
// instead of failing the watering action.
func NextWateringDate(waterRequirement string, from time.Time) time.Time {
	req := strings.TrimSpace(waterRequirement)
	if req == "" {
		req = DefaultWaterRequirement
	}
	switch req {
	case "Dry, Moist":
		// Plants that tolerate dry soil are watered less frequently.
		return from.AddDate(0, 0, 10)
	case "Moist":
		return from.AddDate(0, 0, 5)
	default:
		return from.AddDate(0, 0, 7)
	}
}
