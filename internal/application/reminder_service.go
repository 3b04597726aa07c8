package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"plantapp/internal/domain/repository"
)

// Notifier delivers one reminder to one recipient. A failure is terminal for
// that attempt; the dispatcher does not retry.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DispatchSummary counts the outcome of one reminder run.
type DispatchSummary struct {
	Due    int `json:"due"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// ReminderService scans for relationships that need watering and fans out one
// notification per due relationship.
type ReminderService struct {
	Relationships repository.UserPlantRepository
	Notifier      Notifier
	Logger        *logrus.Logger
}

func NewReminderService(relationships repository.UserPlantRepository, notifier Notifier, logger *logrus.Logger) *ReminderService {
	return &ReminderService{Relationships: relationships, Notifier: notifier, Logger: logger}
}

// RunOnce selects every relationship due on the given day and sends one
// reminder each. Send failures are logged and counted but never abort the
// batch. The run never advances next_watering: an overdue relationship stays
// due and is re-notified on every run until its owner waters the plant again.
func (s *ReminderService) RunOnce(ctx context.Context, today time.Time) (DispatchSummary, error) {
	due, err := s.Relationships.ListDue(ctx, today)
	if err != nil {
		return DispatchSummary{}, fmt.Errorf("list due relationships: %w", err)
	}

	sum := DispatchSummary{Due: len(due)}
	for _, d := range due {
		subject, body := composeReminder(d)
		if err := s.Notifier.Send(ctx, d.Email, subject, body); err != nil {
			sum.Failed++
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"user_id":  d.UserID,
				"plant_id": d.PlantID,
			}).Warn("reminder send failed")
			continue
		}
		sum.Sent++
	}

	s.Logger.WithFields(logrus.Fields{
		"due":    sum.Due,
		"sent":   sum.Sent,
		"failed": sum.Failed,
	}).Info("reminder run finished")
	return sum, nil
}

func composeReminder(d repository.DueReminder) (subject, body string) {
	subject = fmt.Sprintf("Reminder: Time to water %s", d.PlantName)
	body = fmt.Sprintf("Hi %s,\n\nIt's time to water your plant: %s 🌿\n\nHappy gardening! 🌱\n- Your Plant Reminder Bot\n", d.UserName, d.PlantName)
	return subject, body
}
