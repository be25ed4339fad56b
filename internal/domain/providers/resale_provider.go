package providers

import (
	"context"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
)

// ResaleValueProvider estimates what a vehicle will be worth after a number
// of ownership years. Implementations may call out to market-data services
// and are allowed to fail; the cost projector always has a closed-form
// fallback and never surfaces a provider error to its caller.
type ResaleValueProvider interface {
	EstimateResaleValue(ctx context.Context, vehicle *entities.Vehicle, years int) (float64, error)
}
