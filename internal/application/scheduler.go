package application

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// dispatcher is the slice of ReminderService the scheduler drives.
type dispatcher interface {
	RunOnce(ctx context.Context, today time.Time) (DispatchSummary, error)
}

// ReminderScheduler runs the reminder dispatch once per day at a fixed local
// wall-clock hour. It owns dispatch timing for the whole process; a failed
// run never stops the loop.
type ReminderScheduler struct {
	Dispatcher dispatcher
	Clock      clockwork.Clock
	Logger     *logrus.Logger
	Hour       int
}

func NewReminderScheduler(d dispatcher, clock clockwork.Clock, logger *logrus.Logger, hour int) *ReminderScheduler {
	if hour < 0 || hour > 23 {
		hour = 17
	}
	return &ReminderScheduler{Dispatcher: d, Clock: clock, Logger: logger, Hour: hour}
}

// NextRunAt returns the next daily target: today at the given hour, or
// tomorrow's if that moment has arrived or passed. The result is strictly
// after now, so the sleep between runs is never zero.
func NextRunAt(now time.Time, hour int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// Run dispatches immediately, then sleeps until the next daily target and
// repeats, until ctx is cancelled. The target is recomputed from "now" after
// each run, so a slow run skips rather than backlogs.
func (s *ReminderScheduler) Run(ctx context.Context) {
	for {
		now := s.Clock.Now()
		if sum, err := s.Dispatcher.RunOnce(ctx, DateOf(now)); err != nil {
			s.Logger.WithError(err).Error("reminder run failed")
		} else {
			s.Logger.WithFields(logrus.Fields{
				"due":  sum.Due,
				"sent": sum.Sent,
			}).Debug("reminder run completed")
		}

		if ctx.Err() != nil {
			return
		}

		next := NextRunAt(s.Clock.Now(), s.Hour)
		delay := next.Sub(s.Clock.Now())
		s.Logger.WithFields(logrus.Fields{
			"next_run": next.Format(time.RFC3339),
			"in":       delay.String(),
		}).Info("next reminder run scheduled")

		select {
		case <-ctx.Done():
			return
		case <-s.Clock.After(delay):
		}
	}
}
