package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plantapp/internal/domain/repository"
)

func TestRunOnceSendsOneReminderPerDueRelationship(t *testing.T) {
	today := time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)
	due := []repository.DueReminder{
		{UserID: 1, PlantID: 10, UserName: "Alice", Email: "alice@example.com", PlantName: "Monstera"},
		{UserID: 2, PlantID: 11, UserName: "Bob", Email: "bob@example.com", PlantName: "Aloe"},
	}

	repo := new(MockUserPlantRepository)
	repo.On("ListDue", mock.Anything, today).Return(due, nil)
	notifier := &fakeNotifier{}

	svc := NewReminderService(repo, notifier, newTestLogger())
	sum, err := svc.RunOnce(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, DispatchSummary{Due: 2, Sent: 2, Failed: 0}, sum)
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, "alice@example.com", notifier.sent[0].to)
	assert.Equal(t, "Reminder: Time to water Monstera", notifier.sent[0].subject)
	assert.Contains(t, notifier.sent[0].body, "Hi Alice,")
	assert.Contains(t, notifier.sent[0].body, "Monstera")
	assert.Equal(t, "bob@example.com", notifier.sent[1].to)
}

func TestRunOnceFailureDoesNotAbortBatch(t *testing.T) {
	today := time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)
	due := []repository.DueReminder{
		{UserID: 1, PlantID: 10, UserName: "Alice", Email: "alice@example.com", PlantName: "Monstera"},
		{UserID: 2, PlantID: 11, UserName: "Bob", Email: "bob@example.com", PlantName: "Aloe"},
		{UserID: 3, PlantID: 12, UserName: "Cara", Email: "cara@example.com", PlantName: "Fern"},
	}

	repo := new(MockUserPlantRepository)
	repo.On("ListDue", mock.Anything, today).Return(due, nil)
	notifier := &fakeNotifier{failFor: map[string]error{"bob@example.com": errors.New("mailbox full")}}

	svc := NewReminderService(repo, notifier, newTestLogger())
	sum, err := svc.RunOnce(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, DispatchSummary{Due: 3, Sent: 2, Failed: 1}, sum)
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, "alice@example.com", notifier.sent[0].to)
	assert.Equal(t, "cara@example.com", notifier.sent[1].to)
}

func TestRunOnceNeverTouchesScheduleState(t *testing.T) {
	today := time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)
	due := []repository.DueReminder{
		{UserID: 1, PlantID: 10, UserName: "Alice", Email: "alice@example.com", PlantName: "Monstera"},
	}

	repo := new(MockUserPlantRepository)
	repo.On("ListDue", mock.Anything, today).Return(due, nil)

	svc := NewReminderService(repo, &fakeNotifier{}, newTestLogger())
	_, err := svc.RunOnce(context.Background(), today)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "UpdateWateringDates", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunOnceEmptyBatch(t *testing.T) {
	today := time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)

	repo := new(MockUserPlantRepository)
	repo.On("ListDue", mock.Anything, today).Return([]repository.DueReminder{}, nil)
	notifier := &fakeNotifier{}

	svc := NewReminderService(repo, notifier, newTestLogger())
	sum, err := svc.RunOnce(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, DispatchSummary{}, sum)
	assert.Empty(t, notifier.sent)
}

func TestRunOnceListFails(t *testing.T) {
	today := time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)
	boom := errors.New("db down")

	repo := new(MockUserPlantRepository)
	repo.On("ListDue", mock.Anything, today).Return(nil, boom)
	notifier := &fakeNotifier{}

	svc := NewReminderService(repo, notifier, newTestLogger())
	_, err := svc.RunOnce(context.Background(), today)

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, notifier.sent)
}
