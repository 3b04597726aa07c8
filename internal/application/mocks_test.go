package application

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"plantapp/internal/domain/entity"
	"plantapp/internal/domain/repository"
	"plantapp/internal/infrastructure/catalog"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// MockUserPlantRepository is a mock implementation of UserPlantRepository.
type MockUserPlantRepository struct {
	mock.Mock
}

func (m *MockUserPlantRepository) Create(ctx context.Context, up *entity.UserPlant) error {
	args := m.Called(ctx, up)
	return args.Error(0)
}

func (m *MockUserPlantRepository) Get(ctx context.Context, userID, plantID int64) (*entity.UserPlant, error) {
	args := m.Called(ctx, userID, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserPlant), args.Error(1)
}

func (m *MockUserPlantRepository) GetWithPlant(ctx context.Context, userID, plantID int64) (*entity.UserPlant, *entity.Plant, error) {
	args := m.Called(ctx, userID, plantID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.UserPlant), args.Get(1).(*entity.Plant), args.Error(2)
}

func (m *MockUserPlantRepository) Delete(ctx context.Context, userID, plantID int64) error {
	args := m.Called(ctx, userID, plantID)
	return args.Error(0)
}

func (m *MockUserPlantRepository) UpdateWateringDates(ctx context.Context, userID, plantID int64, lastWatered, nextWatering time.Time) error {
	args := m.Called(ctx, userID, plantID, lastWatered, nextWatering)
	return args.Error(0)
}

func (m *MockUserPlantRepository) ListByUser(ctx context.Context, userID int64) ([]repository.GardenPlant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.GardenPlant), args.Error(1)
}

func (m *MockUserPlantRepository) ListDue(ctx context.Context, today time.Time) ([]repository.DueReminder, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DueReminder), args.Error(1)
}

// MockPlantRepository is a mock implementation of PlantRepository.
type MockPlantRepository struct {
	mock.Mock
}

func (m *MockPlantRepository) Create(ctx context.Context, p *entity.Plant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlantRepository) GetByID(ctx context.Context, id int64) (*entity.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Plant), args.Error(1)
}

func (m *MockPlantRepository) GetByPermapeopleID(ctx context.Context, permapeopleID int64) (*entity.Plant, error) {
	args := m.Called(ctx, permapeopleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Plant), args.Error(1)
}

func (m *MockPlantRepository) List(ctx context.Context) ([]entity.Plant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Plant), args.Error(1)
}

func (m *MockPlantRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeCatalog returns canned catalog responses.
type fakeCatalog struct {
	plants map[int64]*catalog.Plant
	err    error
}

func (f *fakeCatalog) GetPlantByID(_ context.Context, id int64) (*catalog.Plant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.plants[id], nil
}

// fakeNotifier records sends and can fail for chosen recipients.
type fakeNotifier struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeNotifier) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
