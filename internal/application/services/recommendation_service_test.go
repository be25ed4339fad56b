package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
)

// stubVehicleRepo serves a fixed catalog and counts snapshot loads
type stubVehicleRepo struct {
	repositories.VehicleRepository
	catalog      []*entities.Vehicle
	catalogCalls int
}

func (s *stubVehicleRepo) Catalog(ctx context.Context) ([]*entities.Vehicle, error) {
	s.catalogCalls++
	return s.catalog, nil
}

func matcherCatalog() []*entities.Vehicle {
	return []*entities.Vehicle{
		{
			ID: "econobox", Make: "Toyota", Model: "Corolla", Class: "Sedan",
			FuelType: entities.FuelTypeGas, Price: 23000, CityMPG: 32,
			ReliabilityScore: 9, LuxuryScore: 3, FunScore: 4, Acceleration: 9.1,
			RearLegroom: 34.8, CargoSpace: 13.1, DriverAssistScore: 6, Seats: 5,
		},
		{
			ID: "family-suv", Make: "Honda", Model: "CR-V", Class: "SUV",
			FuelType: entities.FuelTypeGas, Price: 33000, CityMPG: 28,
			ReliabilityScore: 8.5, LuxuryScore: 5, FunScore: 4, Acceleration: 8.7,
			RearLegroom: 41, CargoSpace: 39.3, DriverAssistScore: 7, Seats: 5,
		},
		{
			ID: "sports-car", Make: "Chevrolet", Model: "Corvette", Class: "Coupe",
			FuelType: entities.FuelTypeGas, Price: 68000, CityMPG: 16,
			ReliabilityScore: 6, LuxuryScore: 7, FunScore: 10, Acceleration: 2.9,
			RearLegroom: 0, CargoSpace: 12.6, DriverAssistScore: 4, Seats: 2,
		},
		{
			ID: "luxury-ev", Make: "BMW", Model: "i5", Class: "Sedan",
			FuelType: entities.FuelTypeElectric, Price: 67000, CityMPG: 93,
			ReliabilityScore: 7, LuxuryScore: 9, FunScore: 8, Acceleration: 5.7,
			RearLegroom: 36.7, CargoSpace: 17.3, DriverAssistScore: 9, Seats: 5,
			RangeMiles: 295,
		},
	}
}

func TestRecommend_ClosestMatchFirst(t *testing.T) {
	repo := &stubVehicleRepo{catalog: matcherCatalog()}
	service := NewRecommendationService(repo)

	// A cheap, reliable, efficient sedan points at the Corolla
	query := &entities.PreferenceQuery{
		Class:            "Sedan",
		FuelType:         entities.FuelTypeGas,
		Price:            23000,
		CityMPG:          32,
		ReliabilityScore: 9,
		LuxuryScore:      3,
		FunScore:         4,
		Acceleration:     9.1,
		RearLegroom:      34.8,
		CargoSpace:       13.1,
		Seats:            5,
	}

	results, err := service.Recommend(context.Background(), query, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "econobox", results[0].Vehicle.ID)

	// Distances are non-decreasing
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].Distance, results[i-1].Distance)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	repo := &stubVehicleRepo{catalog: matcherCatalog()}
	service := NewRecommendationService(repo)
	query := &entities.PreferenceQuery{FunScore: 10, Acceleration: 3}

	first, err := service.Recommend(context.Background(), query, 4)
	require.NoError(t, err)
	second, err := service.Recommend(context.Background(), query, 4)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Vehicle.ID, second[i].Vehicle.ID)
		assert.Equal(t, first[i].Distance, second[i].Distance)
	}
}

func TestRecommend_WildcardQueryDoesNotFail(t *testing.T) {
	repo := &stubVehicleRepo{catalog: matcherCatalog()}
	service := NewRecommendationService(repo)

	// Unset class/fuel default to "Any", which one-hot encodes to zeros
	results, err := service.Recommend(context.Background(), &entities.PreferenceQuery{}, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRecommend_LimitCappedAtCatalogSize(t *testing.T) {
	repo := &stubVehicleRepo{catalog: matcherCatalog()}
	service := NewRecommendationService(repo)

	results, err := service.Recommend(context.Background(), &entities.PreferenceQuery{}, 50)
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestRecommend_DefaultLimit(t *testing.T) {
	repo := &stubVehicleRepo{catalog: matcherCatalog()}
	service := NewRecommendationService(repo)

	results, err := service.Recommend(context.Background(), &entities.PreferenceQuery{}, 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultRecommendationCount)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	repo := &stubVehicleRepo{catalog: nil}
	service := NewRecommendationService(repo)

	results, err := service.Recommend(context.Background(), &entities.PreferenceQuery{}, 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecommend_SingleRowCatalogAlwaysFirst(t *testing.T) {
	only := matcherCatalog()[2]
	repo := &stubVehicleRepo{catalog: []*entities.Vehicle{only}}
	service := NewRecommendationService(repo)

	// A query pointing far away from the sports car still returns it
	query := &entities.PreferenceQuery{Price: 15000, CityMPG: 50, Seats: 8}
	results, err := service.Recommend(context.Background(), query, 3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, only.ID, results[0].Vehicle.ID)
}

func TestRecommend_NilQuery(t *testing.T) {
	service := NewRecommendationService(&stubVehicleRepo{})
	_, err := service.Recommend(context.Background(), nil, 3)
	assert.Error(t, err)
}

func TestRecommend_CachesFittedTransformer(t *testing.T) {
	repo := &stubVehicleRepo{catalog: matcherCatalog()}
	service := NewRecommendationService(repo)

	_, err := service.Recommend(context.Background(), &entities.PreferenceQuery{}, 2)
	require.NoError(t, err)
	_, err = service.Recommend(context.Background(), &entities.PreferenceQuery{}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.catalogCalls)

	service.Invalidate()
	_, err = service.Recommend(context.Background(), &entities.PreferenceQuery{}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.catalogCalls)
}

func TestFitCatalogTransformer_ZeroVarianceColumn(t *testing.T) {
	catalog := []*entities.Vehicle{
		{Class: "Sedan", FuelType: "Gas", Price: 20000, Seats: 5},
		{Class: "Sedan", FuelType: "Gas", Price: 30000, Seats: 5},
	}
	transformer := FitCatalogTransformer(catalog)

	// Seats has zero variance; transforming must not produce NaN or Inf
	vector := transformer.TransformVehicle(catalog[0])
	for _, value := range vector {
		assert.False(t, value != value, "vector contains NaN")
	}
}

func TestOneHot_UnknownCategoryEncodesAsZeros(t *testing.T) {
	transformer := FitCatalogTransformer(matcherCatalog())

	vector := transformer.TransformQuery(&entities.PreferenceQuery{
		Class:    entities.VehicleClassAny,
		FuelType: entities.FuelTypeAny,
	})

	// The categorical suffix of the vector is all zeros for "Any"
	numericCount := 11
	for _, value := range vector[numericCount:] {
		assert.Zero(t, value)
	}
}
