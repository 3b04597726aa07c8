package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDispatcher struct {
	mu   sync.Mutex
	days []time.Time
	err  error
}

func (d *stubDispatcher) RunOnce(_ context.Context, today time.Time) (DispatchSummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.days = append(d.days, today)
	return DispatchSummary{}, d.err
}

func (d *stubDispatcher) runs() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.days)
}

func (d *stubDispatcher) day(i int) time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.days[i]
}

func TestNextRunAt(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"before target runs today",
			time.Date(2025, 4, 17, 16, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 17, 17, 0, 0, 0, time.UTC),
		},
		{
			"after target runs tomorrow",
			time.Date(2025, 4, 17, 17, 30, 0, 0, time.UTC),
			time.Date(2025, 4, 18, 17, 0, 0, 0, time.UTC),
		},
		{
			"exactly on target rolls to tomorrow",
			time.Date(2025, 4, 17, 17, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 18, 17, 0, 0, 0, time.UTC),
		},
		{
			"one second before target runs today",
			time.Date(2025, 4, 17, 16, 59, 59, 0, time.UTC),
			time.Date(2025, 4, 17, 17, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextRunAt(tt.now, 17)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.After(tt.now), "target must be strictly in the future")
		})
	}
}

func TestNextRunAtMonthRollover(t *testing.T) {
	now := time.Date(2025, 4, 30, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 5, 1, 17, 0, 0, 0, time.UTC), NextRunAt(now, 17))
}

func TestSchedulerRunsImmediatelyThenDaily(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 17, 16, 0, 0, 0, time.UTC))
	disp := &stubDispatcher{}
	sched := NewReminderScheduler(disp, clock, newTestLogger(), 17)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	// First run fires on startup; the loop then sleeps until 17:00.
	clock.BlockUntil(1)
	require.Equal(t, 1, disp.runs())
	assert.Equal(t, time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC), disp.day(0))

	clock.Advance(time.Hour)
	clock.BlockUntil(1)
	require.Equal(t, 2, disp.runs())
	assert.Equal(t, time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC), disp.day(1))

	// Next target is tomorrow 17:00.
	clock.Advance(24 * time.Hour)
	clock.BlockUntil(1)
	require.Equal(t, 3, disp.runs())
	assert.Equal(t, time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC), disp.day(2))

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}

func TestSchedulerSurvivesDispatchErrors(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 17, 16, 0, 0, 0, time.UTC))
	disp := &stubDispatcher{err: errors.New("db down")}
	sched := NewReminderScheduler(disp, clock, newTestLogger(), 17)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	clock.BlockUntil(1)
	require.Equal(t, 1, disp.runs())

	clock.Advance(time.Hour)
	clock.BlockUntil(1)
	require.Equal(t, 2, disp.runs())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}

func TestSchedulerDefaultsInvalidHour(t *testing.T) {
	sched := NewReminderScheduler(&stubDispatcher{}, clockwork.NewFakeClock(), newTestLogger(), 99)
	assert.Equal(t, 17, sched.Hour)

	sched = NewReminderScheduler(&stubDispatcher{}, clockwork.NewFakeClock(), newTestLogger(), -1)
	assert.Equal(t, 17, sched.Hour)
}
