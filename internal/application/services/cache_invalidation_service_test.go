package services_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/application/services"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
)

// MockCacheProvider for testing
type MockCacheProvider struct {
	mu      sync.RWMutex
	data    map[string][]byte
	deleted []string
}

func NewMockCacheProvider() *MockCacheProvider {
	return &MockCacheProvider{
		data:    make(map[string][]byte),
		deleted: make([]string, 0),
	}
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if val, ok := m.data[key]; ok {
		return val, nil
	}
	return nil, nil
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCacheProvider) GetMulti(ctx context.Context, keys []string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string][]byte)
	for _, key := range keys {
		if val, ok := m.data[key]; ok {
			result[key] = val
		}
	}
	return result, nil
}

func (m *MockCacheProvider) SetMulti(ctx context.Context, items map[string][]byte, expirationSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, value := range items {
		m.data[key] = value
	}
	return nil
}

func (m *MockCacheProvider) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *MockCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok, nil
}

// DeletePattern supports the trailing-star patterns the services use
func (m *MockCacheProvider) DeletePattern(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			delete(m.data, key)
			m.deleted = append(m.deleted, key)
		}
	}
	return nil
}

func (m *MockCacheProvider) TTL(ctx context.Context, key string) (time.Duration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.data[key]; ok {
		return time.Minute * 5, nil
	}
	return 0, nil
}

func (m *MockCacheProvider) DeletedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.deleted)
}

func (m *MockCacheProvider) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

// MockEventBus for testing
type MockEventBus struct {
	subscribers map[string][]chan *entities.VehicleEvent
	published   []*entities.VehicleEvent
}

func NewMockEventBus() *MockEventBus {
	return &MockEventBus{
		subscribers: make(map[string][]chan *entities.VehicleEvent),
		published:   make([]*entities.VehicleEvent, 0),
	}
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.VehicleEvent) error {
	m.published = append(m.published, event)
	if channels, ok := m.subscribers[channel]; ok {
		for _, ch := range channels {
			select {
			case ch <- event:
			default:
			}
		}
	}
	return nil
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.VehicleEvent, error) {
	ch := make(chan *entities.VehicleEvent, 10)
	m.subscribers[channel] = append(m.subscribers[channel], ch)
	return ch, nil
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error {
	if channels, ok := m.subscribers[channel]; ok {
		for _, ch := range channels {
			close(ch)
		}
		delete(m.subscribers, channel)
	}
	return nil
}

func (m *MockEventBus) Close() error {
	for _, channels := range m.subscribers {
		for _, ch := range channels {
			close(ch)
		}
	}
	return nil
}

func TestCacheInvalidationService_Start(t *testing.T) {
	cache := NewMockCacheProvider()
	eventBus := NewMockEventBus()
	service := services.NewCacheInvalidationService(cache, eventBus)

	err := service.Start()
	if err != nil {
		t.Fatalf("Failed to start service: %v", err)
	}

	// Verify subscription was created
	if len(eventBus.subscribers[entities.CatalogChannel]) != 1 {
		t.Errorf("Expected 1 catalog subscriber, got %d", len(eventBus.subscribers[entities.CatalogChannel]))
	}

	service.Stop()
}

func TestCacheInvalidationService_HandleEvent(t *testing.T) {
	cache := NewMockCacheProvider()
	eventBus := NewMockEventBus()
	service := services.NewCacheInvalidationService(cache, eventBus)

	err := service.Start()
	if err != nil {
		t.Fatalf("Failed to start service: %v", err)
	}
	defer service.Stop()

	ctx := context.Background()
	if err := cache.Set(ctx, "http:cache:abc123", []byte("data"), 300); err != nil {
		t.Fatalf("Failed to seed cache data: %v", err)
	}
	if err := cache.Set(ctx, "pitch:veh-1:Fuel Economy", []byte("pitch"), 300); err != nil {
		t.Fatalf("Failed to seed cache data: %v", err)
	}
	if err := cache.Set(ctx, "pitch:veh-2:Reliability", []byte("pitch"), 300); err != nil {
		t.Fatalf("Failed to seed cache data: %v", err)
	}

	event := &entities.VehicleEvent{
		ID:        "evt-1",
		Type:      entities.VehicleEventUpdated,
		VehicleID: "veh-1",
		Timestamp: time.Now(),
	}

	if err := eventBus.Publish(ctx, entities.CatalogChannel, event); err != nil {
		t.Fatalf("Failed to publish vehicle event: %v", err)
	}

	// Wait for event processing
	time.Sleep(200 * time.Millisecond)

	if cache.Has("http:cache:abc123") {
		t.Error("Expected HTTP response cache to be invalidated")
	}
	if cache.Has("pitch:veh-1:Fuel Economy") {
		t.Error("Expected pitches for the updated vehicle to be invalidated")
	}
	if !cache.Has("pitch:veh-2:Reliability") {
		t.Error("Expected pitches for other vehicles to survive")
	}
}

func TestCacheInvalidationService_InvalidateResponseCache(t *testing.T) {
	cache := NewMockCacheProvider()
	eventBus := NewMockEventBus()
	service := services.NewCacheInvalidationService(cache, eventBus)

	ctx := context.Background()
	if err := cache.Set(ctx, "http:cache:abc123", []byte("data"), 300); err != nil {
		t.Fatalf("Failed to seed cache data: %v", err)
	}
	if err := cache.Set(ctx, "vehicle:veh-1", []byte("row"), 300); err != nil {
		t.Fatalf("Failed to seed cache data: %v", err)
	}

	if err := service.InvalidateResponseCache(ctx); err != nil {
		t.Fatalf("Failed to invalidate response cache: %v", err)
	}

	if cache.Has("http:cache:abc123") {
		t.Error("Expected response cache keys to be deleted")
	}
	if !cache.Has("vehicle:veh-1") {
		t.Error("Expected entity cache keys to survive")
	}
}
