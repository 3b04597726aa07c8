package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNeedsWatering(t *testing.T) {
	today := time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name string
		next *time.Time
		want bool
	}{
		{"no schedule yet", nil, true},
		{"due yesterday", &yesterday, true},
		{"due today", &today, true},
		{"due tomorrow", &tomorrow, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := UserPlant{NextWatering: tt.next}
			assert.Equal(t, tt.want, up.NeedsWatering(today))
		})
	}
}
