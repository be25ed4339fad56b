package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/providers"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
)

// CachedVehicleAdapter wraps VehicleAdapter with caching
type CachedVehicleAdapter struct {
	adapter repositories.VehicleRepository
	cache   providers.CacheProvider
}

// NewCachedVehicleAdapter creates a new cached vehicle adapter
func NewCachedVehicleAdapter(adapter repositories.VehicleRepository, cache providers.CacheProvider) repositories.VehicleRepository {
	return &CachedVehicleAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	vehicleByIDTTL  = 300 // 5 minutes for single vehicle
	vehicleListTTL  = 180 // 3 minutes for lists
	catalogSnapTTL  = 120 // 2 minutes for the full catalog snapshot
	catalogCacheKey = "vehicles:catalog"
)

// Cache key generators
func vehicleCacheKey(id string) string {
	return fmt.Sprintf("vehicle:%s", id)
}

func vehicleListCacheKey(filter repositories.VehicleFilter) string {
	maxPrice := float64(0)
	if filter.MaxPrice != nil {
		maxPrice = *filter.MaxPrice
	}
	return fmt.Sprintf("vehicles:list:%s:%s:%.0f:%d:%d",
		filter.Class, filter.FuelType, maxPrice, filter.Limit, filter.Offset)
}

// GetByID retrieves a vehicle by ID with caching
func (a *CachedVehicleAdapter) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	cacheKey := vehicleCacheKey(id)

	// Try to get from cache first
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var vehicle entities.Vehicle
		if err := json.Unmarshal(cached, &vehicle); err == nil {
			return &vehicle, nil
		}
		// If unmarshal fails, continue to fetch from DB
		log.Printf("Failed to unmarshal cached vehicle %s: %v", id, err)
	}

	// Cache miss - fetch from database
	vehicle, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(vehicle); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, vehicleByIDTTL); err != nil {
				log.Printf("Failed to cache vehicle %s: %v", id, err)
			}
		}
	}()

	return vehicle, nil
}

// GetByIDs retrieves multiple vehicles by IDs, checking the cache per ID
func (a *CachedVehicleAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Vehicle, error) {
	if len(ids) == 0 {
		return []*entities.Vehicle{}, nil
	}

	var cachedVehicles []*entities.Vehicle
	missingIDs := make([]string, 0)

	for _, id := range ids {
		data, err := a.cache.Get(ctx, vehicleCacheKey(id))
		if err == nil {
			var vehicle entities.Vehicle
			if err := json.Unmarshal(data, &vehicle); err == nil {
				cachedVehicles = append(cachedVehicles, &vehicle)
				continue
			}
		}
		missingIDs = append(missingIDs, id)
	}

	// If all were cached, return them
	if len(missingIDs) == 0 {
		return cachedVehicles, nil
	}

	// Fetch missing vehicles from database
	dbVehicles, err := a.adapter.GetByIDs(ctx, missingIDs)
	if err != nil {
		return nil, err
	}

	// Cache the missing vehicles asynchronously
	go func() {
		bgCtx := context.Background()
		for _, vehicle := range dbVehicles {
			if data, err := json.Marshal(vehicle); err == nil {
				if err := a.cache.Set(bgCtx, vehicleCacheKey(vehicle.ID), data, vehicleByIDTTL); err != nil {
					log.Printf("Failed to cache vehicle %s: %v", vehicle.ID, err)
				}
			}
		}
	}()

	return append(cachedVehicles, dbVehicles...), nil
}

// List retrieves a list of vehicles with caching
func (a *CachedVehicleAdapter) List(ctx context.Context, filter repositories.VehicleFilter) ([]*entities.Vehicle, error) {
	cacheKey := vehicleListCacheKey(filter)

	// Try to get from cache first
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var vehicles []*entities.Vehicle
		if err := json.Unmarshal(cached, &vehicles); err == nil {
			return vehicles, nil
		}
		log.Printf("Failed to unmarshal cached vehicle list: %v", err)
	}

	// Cache miss - fetch from database
	vehicles, err := a.adapter.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(vehicles); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, vehicleListTTL); err != nil {
				log.Printf("Failed to cache vehicle list: %v", err)
			}
		}
	}()

	return vehicles, nil
}

// Catalog returns the full active vehicle snapshot with caching. The
// snapshot is what the recommendation transformer fits against, so the
// cached copy preserves the adapter's ordering byte for byte.
func (a *CachedVehicleAdapter) Catalog(ctx context.Context) ([]*entities.Vehicle, error) {
	if cached, err := a.cache.Get(ctx, catalogCacheKey); err == nil {
		var vehicles []*entities.Vehicle
		if err := json.Unmarshal(cached, &vehicles); err == nil {
			return vehicles, nil
		}
		log.Printf("Failed to unmarshal cached catalog: %v", err)
	}

	vehicles, err := a.adapter.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(vehicles); err == nil {
			if err := a.cache.Set(bgCtx, catalogCacheKey, data, catalogSnapTTL); err != nil {
				log.Printf("Failed to cache catalog: %v", err)
			}
		}
	}()

	return vehicles, nil
}

// Create creates a vehicle and invalidates related caches
func (a *CachedVehicleAdapter) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	err := a.adapter.Create(ctx, vehicle)
	if err != nil {
		return err
	}

	go a.invalidateDerived("")

	return nil
}

// Update updates a vehicle and invalidates its cache
func (a *CachedVehicleAdapter) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	err := a.adapter.Update(ctx, vehicle)
	if err != nil {
		return err
	}

	go a.invalidateDerived(vehicle.ID)

	return nil
}

// Delete deletes a vehicle and invalidates its cache
func (a *CachedVehicleAdapter) Delete(ctx context.Context, id string) error {
	err := a.adapter.Delete(ctx, id)
	if err != nil {
		return err
	}

	go a.invalidateDerived(id)

	return nil
}

// invalidateDerived drops every cache entry derived from the catalog.
// Runs on its own goroutine after writes so responses are not blocked.
func (a *CachedVehicleAdapter) invalidateDerived(vehicleID string) {
	bgCtx := context.Background()

	if vehicleID != "" {
		if err := a.cache.Delete(bgCtx, vehicleCacheKey(vehicleID)); err != nil {
			log.Printf("Failed to invalidate vehicle cache %s: %v", vehicleID, err)
		}
	}

	if err := a.cache.Delete(bgCtx, catalogCacheKey); err != nil {
		log.Printf("Failed to invalidate catalog cache: %v", err)
	}
	if err := a.cache.DeletePattern(bgCtx, "vehicles:list:*"); err != nil {
		log.Printf("Failed to invalidate vehicle list cache: %v", err)
	}
	if err := a.cache.DeletePattern(bgCtx, "pitch:*"); err != nil {
		log.Printf("Failed to invalidate pitch cache: %v", err)
	}
}
