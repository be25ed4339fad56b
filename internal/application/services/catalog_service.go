package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/providers"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/errors"
)

// CatalogService handles business logic for the vehicle catalog
type CatalogService struct {
	repo       repositories.VehicleRepository
	searchRepo repositories.VehicleSearchRepository
	eventBus   providers.EventBus
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repositories.VehicleRepository, searchRepo repositories.VehicleSearchRepository, eventBus providers.EventBus) *CatalogService {
	return &CatalogService{
		repo:       repo,
		searchRepo: searchRepo,
		eventBus:   eventBus,
	}
}

// Create creates a new vehicle, indexes it and announces the change
func (s *CatalogService) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}

	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	vehicle.IsActive = true

	// 1. Save to database
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return err
	}

	// 2. Index in search engine
	if s.searchRepo != nil {
		if err := s.searchRepo.Index(ctx, vehicle); err != nil {
			// Log error but don't fail the request (eventual consistency)
			log.Printf("Warning: Failed to index vehicle %s: %v", vehicle.ID, err)
		}
	}

	// 3. Announce the catalog change
	s.publishEvent(ctx, entities.VehicleEventCreated, vehicle.ID)

	return nil
}

// GetByID retrieves a vehicle by ID
func (s *CatalogService) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("vehicle id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// Update updates a vehicle, refreshes the index and announces the change
func (s *CatalogService) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	if vehicle == nil || vehicle.ID == "" {
		return apperrors.NewValidationError("vehicle id is required")
	}
	if err := validateVehicle(vehicle); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, vehicle); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Index(ctx, vehicle); err != nil {
			log.Printf("Warning: Failed to update vehicle index %s: %v", vehicle.ID, err)
		}
	}

	s.publishEvent(ctx, entities.VehicleEventUpdated, vehicle.ID)

	return nil
}

// Delete soft-deletes a vehicle, drops it from the index and announces
// the change
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidationError("vehicle id is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Delete(ctx, id); err != nil {
			log.Printf("Warning: Failed to delete vehicle from index %s: %v", id, err)
		}
	}

	s.publishEvent(ctx, entities.VehicleEventDeleted, id)

	return nil
}

// List retrieves vehicles with filters
func (s *CatalogService) List(ctx context.Context, filter repositories.VehicleFilter) ([]*entities.Vehicle, error) {
	return s.repo.List(ctx, filter)
}

// Search searches vehicles by free text using the search engine when
// available, falling back to a plain database listing
func (s *CatalogService) Search(ctx context.Context, params repositories.SearchParams) ([]*entities.Vehicle, error) {
	if s.searchRepo != nil {
		return s.searchRepo.Search(ctx, params)
	}

	active := true
	return s.repo.List(ctx, repositories.VehicleFilter{
		Class:    params.Class,
		FuelType: params.FuelType,
		MaxPrice: params.MaxPrice,
		IsActive: &active,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

func (s *CatalogService) publishEvent(ctx context.Context, eventType entities.VehicleEventType, vehicleID string) {
	if s.eventBus == nil {
		return
	}

	event := &entities.VehicleEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		VehicleID: vehicleID,
		Timestamp: time.Now(),
	}

	if err := s.eventBus.Publish(ctx, entities.CatalogChannel, event); err != nil {
		log.Printf("Warning: Failed to publish %s for vehicle %s: %v", eventType, vehicleID, err)
	}
}

func validateVehicle(vehicle *entities.Vehicle) error {
	if vehicle == nil {
		return apperrors.NewValidationError("vehicle is required")
	}
	if vehicle.Make == "" || vehicle.Model == "" {
		return apperrors.NewValidationError("vehicle make and model are required")
	}
	if vehicle.Price < 0 {
		return apperrors.NewValidationError("vehicle price must not be negative")
	}
	return nil
}
