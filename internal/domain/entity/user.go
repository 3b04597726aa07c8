package entity

import (
	"time"
)

// User owns plants through UserPlant relationships. Email is the delivery
// address for watering reminders.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
