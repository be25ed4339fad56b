package providers

import (
	"context"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
)

// PitchProvider generates a short persuasive sales pitch for a vehicle,
// tailored to the buyer's stated top priority (e.g. "Fuel Economy").
type PitchProvider interface {
	GeneratePitch(ctx context.Context, vehicle *entities.Vehicle, priority string) (string, error)
}
