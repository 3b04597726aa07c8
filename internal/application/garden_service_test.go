package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plantapp/internal/domain/entity"
	"plantapp/internal/domain/repository"
	"plantapp/internal/infrastructure/catalog"
)

func newGardenService(plants *MockPlantRepository, rels *MockUserPlantRepository, cat CatalogClient) *GardenService {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 17, 12, 0, 0, 0, time.UTC))
	return NewGardenService(plants, rels, cat, clock, newTestLogger())
}

func TestAddPlantAlreadyCachedLocally(t *testing.T) {
	cached := &entity.Plant{ID: 5, PermapeopleID: 142, Name: "Monstera", WaterRequirement: "Moist"}

	plants := new(MockPlantRepository)
	plants.On("GetByPermapeopleID", mock.Anything, int64(142)).Return(cached, nil)
	rels := new(MockUserPlantRepository)
	rels.On("Create", mock.Anything, &entity.UserPlant{UserID: 1, PlantID: 5}).Return(nil)

	svc := newGardenService(plants, rels, &fakeCatalog{})
	plant, err := svc.AddPlant(context.Background(), 1, 142)

	require.NoError(t, err)
	assert.Equal(t, cached, plant)
	plants.AssertExpectations(t)
	rels.AssertExpectations(t)
}

func TestAddPlantFetchesFromCatalogOnMiss(t *testing.T) {
	plants := new(MockPlantRepository)
	plants.On("GetByPermapeopleID", mock.Anything, int64(142)).Return(nil, repository.ErrNotFound)
	plants.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Plant) bool {
		return p.PermapeopleID == 142 && p.Name == "Monstera" && p.WaterRequirement == "Moist"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Plant).ID = 9
	}).Return(nil)

	rels := new(MockUserPlantRepository)
	rels.On("Create", mock.Anything, &entity.UserPlant{UserID: 1, PlantID: 9}).Return(nil)

	cat := &fakeCatalog{plants: map[int64]*catalog.Plant{
		142: {ID: 142, Name: "Monstera", ImageURL: "https://img/monstera.jpg", WaterRequirement: "Moist", LightRequirement: "Bright, indirect"},
	}}

	svc := newGardenService(plants, rels, cat)
	plant, err := svc.AddPlant(context.Background(), 1, 142)

	require.NoError(t, err)
	assert.Equal(t, int64(9), plant.ID)
	assert.Equal(t, "https://img/monstera.jpg", plant.ImageURL)
	plants.AssertExpectations(t)
	rels.AssertExpectations(t)
}

func TestAddPlantUnknownCatalogID(t *testing.T) {
	plants := new(MockPlantRepository)
	plants.On("GetByPermapeopleID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)
	rels := new(MockUserPlantRepository)

	svc := newGardenService(plants, rels, &fakeCatalog{})
	plant, err := svc.AddPlant(context.Background(), 1, 404)

	assert.Nil(t, plant)
	assert.ErrorIs(t, err, ErrPlantNotFound)
	rels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddPlantCatalogUnavailable(t *testing.T) {
	boom := errors.New("upstream timeout")
	plants := new(MockPlantRepository)
	plants.On("GetByPermapeopleID", mock.Anything, int64(142)).Return(nil, repository.ErrNotFound)

	svc := newGardenService(plants, new(MockUserPlantRepository), &fakeCatalog{err: boom})
	_, err := svc.AddPlant(context.Background(), 1, 142)

	assert.ErrorIs(t, err, boom)
}

func TestAddPlantDuplicateRelationship(t *testing.T) {
	cached := &entity.Plant{ID: 5, PermapeopleID: 142, Name: "Monstera"}

	plants := new(MockPlantRepository)
	plants.On("GetByPermapeopleID", mock.Anything, int64(142)).Return(cached, nil)
	rels := new(MockUserPlantRepository)
	rels.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	svc := newGardenService(plants, rels, &fakeCatalog{})
	_, err := svc.AddPlant(context.Background(), 1, 142)

	assert.ErrorIs(t, err, ErrAlreadyInGarden)
}

func TestAddPlantConcurrentCatalogInsert(t *testing.T) {
	winner := &entity.Plant{ID: 5, PermapeopleID: 142, Name: "Monstera"}

	plants := new(MockPlantRepository)
	plants.On("GetByPermapeopleID", mock.Anything, int64(142)).Return(nil, repository.ErrNotFound).Once()
	plants.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)
	plants.On("GetByPermapeopleID", mock.Anything, int64(142)).Return(winner, nil)

	rels := new(MockUserPlantRepository)
	rels.On("Create", mock.Anything, &entity.UserPlant{UserID: 1, PlantID: 5}).Return(nil)

	cat := &fakeCatalog{plants: map[int64]*catalog.Plant{142: {ID: 142, Name: "Monstera"}}}

	svc := newGardenService(plants, rels, cat)
	plant, err := svc.AddPlant(context.Background(), 1, 142)

	require.NoError(t, err)
	assert.Equal(t, winner, plant)
}

func TestRemovePlantNotInGarden(t *testing.T) {
	rels := new(MockUserPlantRepository)
	rels.On("Delete", mock.Anything, int64(1), int64(5)).Return(repository.ErrNotFound)

	svc := newGardenService(new(MockPlantRepository), rels, &fakeCatalog{})
	err := svc.RemovePlant(context.Background(), 1, 5)

	assert.ErrorIs(t, err, ErrPlantNotInGarden)
}

func TestListGardenComputesNeedsWatering(t *testing.T) {
	yesterday := time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)
	nextWeek := time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC)

	rows := []repository.GardenPlant{
		{Plant: entity.Plant{ID: 1, Name: "Never watered"}},
		{Plant: entity.Plant{ID: 2, Name: "Overdue"}, LastWatered: &yesterday, NextWatering: &yesterday},
		{Plant: entity.Plant{ID: 3, Name: "Due today"}, LastWatered: &yesterday, NextWatering: &today},
		{Plant: entity.Plant{ID: 4, Name: "Watered recently"}, LastWatered: &today, NextWatering: &nextWeek},
	}

	rels := new(MockUserPlantRepository)
	rels.On("ListByUser", mock.Anything, int64(1)).Return(rows, nil)

	svc := newGardenService(new(MockPlantRepository), rels, &fakeCatalog{})
	entries, err := svc.ListGarden(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.True(t, entries[0].NeedsWatering, "no schedule yet means due")
	assert.True(t, entries[1].NeedsWatering, "past due date")
	assert.True(t, entries[2].NeedsWatering, "due on the day itself")
	assert.False(t, entries[3].NeedsWatering, "due next week")
}

func TestListPlants(t *testing.T) {
	stored := []entity.Plant{
		{ID: 1, PermapeopleID: 377, Name: "Aloe vera", WaterRequirement: "Dry, Moist"},
		{ID: 2, PermapeopleID: 142, Name: "Monstera deliciosa", WaterRequirement: "Moist"},
	}

	plants := new(MockPlantRepository)
	plants.On("List", mock.Anything).Return(stored, nil)

	svc := newGardenService(plants, new(MockUserPlantRepository), &fakeCatalog{})
	got, err := svc.ListPlants(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestGetPlantByLocalID(t *testing.T) {
	stored := &entity.Plant{ID: 5, PermapeopleID: 142, Name: "Monstera deliciosa"}

	plants := new(MockPlantRepository)
	plants.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
	plants.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

	svc := newGardenService(plants, new(MockUserPlantRepository), &fakeCatalog{})

	got, err := svc.GetPlant(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = svc.GetPlant(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestDeletePlant(t *testing.T) {
	plants := new(MockPlantRepository)
	plants.On("Delete", mock.Anything, int64(5)).Return(nil)
	plants.On("Delete", mock.Anything, int64(99)).Return(repository.ErrNotFound)

	svc := newGardenService(plants, new(MockUserPlantRepository), &fakeCatalog{})

	require.NoError(t, svc.DeletePlant(context.Background(), 5))
	assert.ErrorIs(t, svc.DeletePlant(context.Background(), 99), ErrPlantNotFound)
	plants.AssertExpectations(t)
}

func TestListGardenEmpty(t *testing.T) {
	rels := new(MockUserPlantRepository)
	rels.On("ListByUser", mock.Anything, int64(1)).Return([]repository.GardenPlant{}, nil)

	svc := newGardenService(new(MockPlantRepository), rels, &fakeCatalog{})
	entries, err := svc.ListGarden(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, entries)
}
