package resale

import (
	"context"
	"math"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/errors"
)

const (
	baseDepreciationRate    = 0.12
	luxuryDepreciationBoost = 1.2
	luxuryThreshold         = 7.0
)

// DepreciationProvider estimates resale value with a fixed annual
// depreciation curve. Luxury vehicles shed value faster, so anything
// scoring above the threshold gets a steeper rate.
type DepreciationProvider struct{}

var _ providers.ResaleValueProvider = (*DepreciationProvider)(nil)

// NewDepreciationProvider creates the default resale estimator
func NewDepreciationProvider() *DepreciationProvider {
	return &DepreciationProvider{}
}

// EstimateResaleValue returns the projected value after the given years
func (p *DepreciationProvider) EstimateResaleValue(_ context.Context, vehicle *entities.Vehicle, years int) (float64, error) {
	if vehicle == nil {
		return 0, apperrors.NewValidationError("vehicle is required")
	}
	if years < 0 {
		return 0, apperrors.NewValidationError("years must not be negative")
	}

	modifier := 1.0
	if vehicle.LuxuryScore > luxuryThreshold {
		modifier = luxuryDepreciationBoost
	}

	return vehicle.Price * math.Pow(1-baseDepreciationRate*modifier, float64(years)), nil
}
