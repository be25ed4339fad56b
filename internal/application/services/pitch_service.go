package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/providers"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/errors"
)

const (
	// DefaultPitchPriority is used when the buyer does not name one
	DefaultPitchPriority = "Balanced"

	pitchCacheTTL = 60 * 60 * 24 // generated copy is stable per vehicle+priority
)

// PitchService produces the short sales pitch shown next to a recommended
// vehicle. Generated copy is cached per vehicle and priority; generator
// failures degrade to a canned line rather than an error.
type PitchService struct {
	vehicleRepo repositories.VehicleRepository
	generator   providers.PitchProvider
	cache       providers.CacheProvider
}

// NewPitchService creates a new pitch service
func NewPitchService(vehicleRepo repositories.VehicleRepository, generator providers.PitchProvider, cache providers.CacheProvider) *PitchService {
	return &PitchService{
		vehicleRepo: vehicleRepo,
		generator:   generator,
		cache:       cache,
	}
}

func pitchCacheKey(vehicleID, priority string) string {
	return fmt.Sprintf("pitch:%s:%s", vehicleID, priority)
}

// GetPitch returns the sales pitch for a vehicle tailored to the buyer's
// top priority. The vehicle must exist; everything downstream of the
// lookup is best-effort.
func (s *PitchService) GetPitch(ctx context.Context, vehicleID, priority string) (string, error) {
	if vehicleID == "" {
		return "", apperrors.NewValidationError("vehicle id is required")
	}
	if priority == "" {
		priority = DefaultPitchPriority
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return "", err
	}

	cacheKey := pitchCacheKey(vehicleID, priority)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			return string(cached), nil
		}
	}

	pitch := s.generate(ctx, vehicle, priority)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, []byte(pitch), pitchCacheTTL); err != nil {
			log.Warn().Err(err).Str("vehicle_id", vehicleID).Msg("Failed to cache pitch")
		}
	}

	return pitch, nil
}

// generate calls the LLM provider and masks any failure with a canned
// line, matching the degraded-but-never-broken contract of the endpoint.
func (s *PitchService) generate(ctx context.Context, vehicle *entities.Vehicle, priority string) string {
	if s.generator != nil {
		pitch, err := s.generator.GeneratePitch(ctx, vehicle, priority)
		if err == nil && pitch != "" {
			return pitch
		}
		if err != nil {
			log.Warn().Err(err).Str("vehicle_id", vehicle.ID).Msg("Pitch generation failed, using fallback")
		}
	}

	return fmt.Sprintf("This %s is a fantastic choice for %s.", vehicle.Model, priority)
}
