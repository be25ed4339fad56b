package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
)

type fakeVehicleRepo struct {
	repositories.VehicleRepository
	created *entities.Vehicle
	deleted string
}

func (f *fakeVehicleRepo) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	f.created = vehicle
	return nil
}

func (f *fakeVehicleRepo) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	return nil
}

func (f *fakeVehicleRepo) Delete(ctx context.Context, id string) error {
	f.deleted = id
	return nil
}

func (f *fakeVehicleRepo) List(ctx context.Context, filter repositories.VehicleFilter) ([]*entities.Vehicle, error) {
	return []*entities.Vehicle{{ID: "from-db"}}, nil
}

type fakeSearchRepo struct {
	indexed  []string
	removed  []string
	searched bool
	err      error
}

func (f *fakeSearchRepo) Index(ctx context.Context, vehicle *entities.Vehicle) error {
	f.indexed = append(f.indexed, vehicle.ID)
	return f.err
}

func (f *fakeSearchRepo) Delete(ctx context.Context, id string) error {
	f.removed = append(f.removed, id)
	return f.err
}

func (f *fakeSearchRepo) Search(ctx context.Context, params repositories.SearchParams) ([]*entities.Vehicle, error) {
	f.searched = true
	return []*entities.Vehicle{{ID: "from-index"}}, f.err
}

type fakeEventBus struct {
	published []*entities.VehicleEvent
	err       error
}

func (f *fakeEventBus) Publish(ctx context.Context, channel string, event *entities.VehicleEvent) error {
	f.published = append(f.published, event)
	return f.err
}

func (f *fakeEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.VehicleEvent, error) {
	return nil, nil
}

func (f *fakeEventBus) Unsubscribe(ctx context.Context, channel string) error { return nil }
func (f *fakeEventBus) Close() error                                          { return nil }

func TestCatalogCreate_AssignsIDIndexesAndPublishes(t *testing.T) {
	repo := &fakeVehicleRepo{}
	searchRepo := &fakeSearchRepo{}
	bus := &fakeEventBus{}
	service := NewCatalogService(repo, searchRepo, bus)

	vehicle := &entities.Vehicle{Make: "Subaru", Model: "Outback", Price: 32000}
	err := service.Create(context.Background(), vehicle)
	require.NoError(t, err)

	assert.NotEmpty(t, vehicle.ID)
	assert.True(t, vehicle.IsActive)
	assert.False(t, vehicle.CreatedAt.IsZero())
	assert.Equal(t, []string{vehicle.ID}, searchRepo.indexed)

	require.Len(t, bus.published, 1)
	assert.Equal(t, entities.VehicleEventCreated, bus.published[0].Type)
	assert.Equal(t, vehicle.ID, bus.published[0].VehicleID)
}

func TestCatalogCreate_IndexFailureDoesNotFail(t *testing.T) {
	repo := &fakeVehicleRepo{}
	searchRepo := &fakeSearchRepo{err: errors.New("typesense down")}
	service := NewCatalogService(repo, searchRepo, nil)

	err := service.Create(context.Background(), &entities.Vehicle{Make: "Ford", Model: "Maverick", Price: 28000})
	assert.NoError(t, err)
	assert.NotNil(t, repo.created)
}

func TestCatalogCreate_Validation(t *testing.T) {
	service := NewCatalogService(&fakeVehicleRepo{}, nil, nil)

	assert.Error(t, service.Create(context.Background(), nil))
	assert.Error(t, service.Create(context.Background(), &entities.Vehicle{Model: "Nameless"}))
	assert.Error(t, service.Create(context.Background(), &entities.Vehicle{Make: "Ford", Model: "Maverick", Price: -1}))
}

func TestCatalogDelete_RemovesFromIndexAndPublishes(t *testing.T) {
	repo := &fakeVehicleRepo{}
	searchRepo := &fakeSearchRepo{}
	bus := &fakeEventBus{}
	service := NewCatalogService(repo, searchRepo, bus)

	err := service.Delete(context.Background(), "veh-1")
	require.NoError(t, err)

	assert.Equal(t, "veh-1", repo.deleted)
	assert.Equal(t, []string{"veh-1"}, searchRepo.removed)
	require.Len(t, bus.published, 1)
	assert.Equal(t, entities.VehicleEventDeleted, bus.published[0].Type)
}

func TestCatalogSearch_PrefersSearchEngine(t *testing.T) {
	searchRepo := &fakeSearchRepo{}
	service := NewCatalogService(&fakeVehicleRepo{}, searchRepo, nil)

	results, err := service.Search(context.Background(), repositories.SearchParams{Query: "awd wagon"})
	require.NoError(t, err)
	assert.True(t, searchRepo.searched)
	require.Len(t, results, 1)
	assert.Equal(t, "from-index", results[0].ID)
}

func TestCatalogSearch_FallsBackToDatabase(t *testing.T) {
	service := NewCatalogService(&fakeVehicleRepo{}, nil, nil)

	results, err := service.Search(context.Background(), repositories.SearchParams{Query: "anything"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "from-db", results[0].ID)
}
