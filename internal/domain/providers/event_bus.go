package providers

import (
	"context"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
)

// EventBus defines publish/subscribe for catalog change events
type EventBus interface {
	// Publish publishes an event to all subscribers of a channel
	Publish(ctx context.Context, channel string, event *entities.VehicleEvent) error

	// Subscribe subscribes to events on a channel; the returned channel is
	// closed when ctx is cancelled or the bus shuts down
	Subscribe(ctx context.Context, channel string) (<-chan *entities.VehicleEvent, error)

	// Unsubscribe tears down a channel subscription
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}
