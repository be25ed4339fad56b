package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/providers"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
)

// CacheWarmingService keeps the hot catalog reads cached between requests
type CacheWarmingService struct {
	vehicleRepo repositories.VehicleRepository
	cache       providers.CacheProvider
}

// NewCacheWarmingService creates a new cache warming service
func NewCacheWarmingService(
	vehicleRepo repositories.VehicleRepository,
	cache providers.CacheProvider,
) *CacheWarmingService {
	return &CacheWarmingService{
		vehicleRepo: vehicleRepo,
		cache:       cache,
	}
}

// WarmCache warms the cache with frequently accessed data
func (s *CacheWarmingService) WarmCache(ctx context.Context) error {
	log.Println("Starting cache warming...")

	if err := s.warmCatalog(ctx); err != nil {
		log.Printf("Failed to warm catalog: %v", err)
	}

	log.Println("Cache warming completed")
	return nil
}

// warmCatalog caches the full active catalog plus each vehicle row.
// The catalog snapshot backs the preference matcher, the per-vehicle
// entries back detail, cost and pitch lookups.
func (s *CacheWarmingService) warmCatalog(ctx context.Context) error {
	vehicles, err := s.vehicleRepo.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}

	items := make(map[string][]byte)
	for _, vehicle := range vehicles {
		data, err := json.Marshal(vehicle)
		if err != nil {
			log.Printf("Failed to marshal vehicle %s: %v", vehicle.ID, err)
			continue
		}
		key := fmt.Sprintf("vehicle:%s", vehicle.ID)
		items[key] = data
	}

	if snapshot, err := json.Marshal(vehicles); err == nil {
		items["vehicles:catalog"] = snapshot
	} else {
		log.Printf("Failed to marshal catalog snapshot: %v", err)
	}

	// Batch set to cache with 5 minute TTL
	if len(items) > 0 {
		if err := s.cache.SetMulti(ctx, items, 300); err != nil {
			return fmt.Errorf("failed to cache catalog: %w", err)
		}
		log.Printf("Warmed cache with %d vehicles", len(vehicles))
	}

	return nil
}

// StartPeriodicWarming starts a background goroutine that periodically warms the cache
func (s *CacheWarmingService) StartPeriodicWarming(ctx context.Context, interval time.Duration) {
	// Initial warming
	if err := s.WarmCache(ctx); err != nil {
		log.Printf("Initial cache warming failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("Stopping cache warming service")
				return
			case <-ticker.C:
				if err := s.WarmCache(context.Background()); err != nil {
					log.Printf("Periodic cache warming failed: %v", err)
				}
			}
		}
	}()
	log.Printf("Started periodic cache warming every %v", interval)
}

// WarmVehicle warms cache for a specific vehicle
func (s *CacheWarmingService) WarmVehicle(ctx context.Context, vehicleID string) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to fetch vehicle: %w", err)
	}

	data, err := json.Marshal(vehicle)
	if err != nil {
		return fmt.Errorf("failed to marshal vehicle: %w", err)
	}

	if err := s.cache.Set(ctx, fmt.Sprintf("vehicle:%s", vehicleID), data, 300); err != nil {
		return fmt.Errorf("failed to cache vehicle: %w", err)
	}

	log.Printf("Warmed cache for vehicle %s", vehicleID)
	return nil
}

// InvalidateCache invalidates all cached catalog data (useful after bulk updates)
func (s *CacheWarmingService) InvalidateCache(ctx context.Context) error {
	patterns := []string{
		"vehicle:*",
		"vehicles:*",
		"pitch:*",
	}

	for _, pattern := range patterns {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			log.Printf("Failed to invalidate cache pattern %s: %v", pattern, err)
		}
	}

	log.Println("Cache invalidated")
	return nil
}

// GetCacheStats returns cache statistics (if available)
func (s *CacheWarmingService) GetCacheStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	sampleKeys := []string{
		"vehicles:catalog",
	}

	cachedCount := 0
	for _, key := range sampleKeys {
		exists, err := s.cache.Exists(ctx, key)
		if err != nil {
			continue
		}
		if exists {
			cachedCount++

			if ttl, err := s.cache.TTL(ctx, key); err == nil {
				stats[fmt.Sprintf("%s_ttl", key)] = ttl.Seconds()
			}
		}
	}

	stats["cached_sample_keys"] = cachedCount
	stats["total_sample_keys"] = len(sampleKeys)
	if len(sampleKeys) > 0 {
		stats["sample_cache_hit_rate"] = float64(cachedCount) / float64(len(sampleKeys))
	}

	return stats, nil
}
