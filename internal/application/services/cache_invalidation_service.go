package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/providers"
)

// CacheInvalidationService drops cached HTTP responses when the catalog changes
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins listening for catalog events and invalidating cache
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, entities.CatalogChannel)
	if err != nil {
		return fmt.Errorf("failed to subscribe to catalog events: %w", err)
	}

	go s.processEvents(eventChan)
	log.Println("Cache invalidation service started")
	return nil
}

// Stop stops the cache invalidation service
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	log.Println("Cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.VehicleEvent) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event := <-eventChan:
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

// handleEvent handles a single vehicle event
func (s *CacheInvalidationService) handleEvent(event *entities.VehicleEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Printf("Processing cache invalidation for event: %s (vehicle: %s, type: %s)",
		event.ID, event.VehicleID, event.Type)

	// HTTP response cache keys are hashed, so entries cannot be matched per
	// vehicle. List, search and detail responses can all embed the changed
	// row, so the whole response cache goes.
	if err := s.InvalidateResponseCache(ctx); err != nil {
		log.Printf("Warning: Failed to invalidate response cache: %v", err)
	}

	// Pitches quote price and specs, so the changed vehicle's copies go too.
	pitchPattern := fmt.Sprintf("pitch:%s:*", event.VehicleID)
	if err := s.cache.DeletePattern(ctx, pitchPattern); err != nil {
		log.Printf("Warning: Failed to invalidate pitches for %s: %v", event.VehicleID, err)
	} else {
		log.Printf("Invalidated pitches for %s", event.VehicleID)
	}
}

// InvalidateResponseCache invalidates all cached HTTP responses.
// Entries are short-lived (5-10 minute TTLs), so the stampede window is small.
func (s *CacheInvalidationService) InvalidateResponseCache(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, "http:cache:*"); err != nil {
		return fmt.Errorf("failed to invalidate response cache: %w", err)
	}
	log.Println("Invalidated HTTP response cache")
	return nil
}
