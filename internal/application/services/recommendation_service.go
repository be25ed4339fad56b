package services

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/errors"
)

// DefaultRecommendationCount is returned when the caller does not ask
// for a specific number of matches.
const DefaultRecommendationCount = 3

// ScoredVehicle pairs a catalog row with its distance to the query in
// the fitted feature space. Lower distance means a closer match.
type ScoredVehicle struct {
	Vehicle  *entities.Vehicle `json:"vehicle"`
	Distance float64           `json:"distance"`
}

// CatalogTransformer holds the feature-scaling parameters and one-hot
// vocabulary fitted against one catalog snapshot. It is immutable once
// fitted and safe to share across concurrent scoring calls.
type CatalogTransformer struct {
	means      []float64
	scales     []float64
	classVocab []string
	fuelVocab  []string
}

func numericFeatures(price, cityMPG, reliability, luxury, fun, acceleration,
	rearLegroom, cargo, driverAssist, offroad, seats float64) []float64 {
	return []float64{
		price, cityMPG, reliability, luxury, fun, acceleration,
		rearLegroom, cargo, driverAssist, offroad, seats,
	}
}

func vehicleNumericFeatures(v *entities.Vehicle) []float64 {
	return numericFeatures(
		v.Price, v.CityMPG, v.ReliabilityScore, v.LuxuryScore, v.FunScore,
		v.Acceleration, v.RearLegroom, v.CargoSpace, v.DriverAssistScore,
		v.OffroadCapability, float64(v.Seats),
	)
}

func queryNumericFeatures(q *entities.PreferenceQuery) []float64 {
	return numericFeatures(
		q.Price, q.CityMPG, q.ReliabilityScore, q.LuxuryScore, q.FunScore,
		q.Acceleration, q.RearLegroom, q.CargoSpace, q.DriverAssistScore,
		q.OffroadCapability, q.Seats,
	)
}

// FitCatalogTransformer computes per-feature mean and population standard
// deviation over the catalog, plus the sorted category vocabulary for the
// one-hot encoded class and fuel type columns. Zero-variance columns get a
// no-op scale of 1 so transforming never divides by zero.
func FitCatalogTransformer(catalog []*entities.Vehicle) *CatalogTransformer {
	featureCount := len(vehicleNumericFeatures(&entities.Vehicle{}))
	t := &CatalogTransformer{
		means:  make([]float64, featureCount),
		scales: make([]float64, featureCount),
	}

	n := float64(len(catalog))
	if n == 0 {
		for i := range t.scales {
			t.scales[i] = 1
		}
		return t
	}

	for _, vehicle := range catalog {
		for i, value := range vehicleNumericFeatures(vehicle) {
			t.means[i] += value
		}
	}
	for i := range t.means {
		t.means[i] /= n
	}

	for _, vehicle := range catalog {
		for i, value := range vehicleNumericFeatures(vehicle) {
			diff := value - t.means[i]
			t.scales[i] += diff * diff
		}
	}
	for i := range t.scales {
		t.scales[i] = math.Sqrt(t.scales[i] / n)
		if t.scales[i] == 0 {
			t.scales[i] = 1
		}
	}

	t.classVocab = collectVocabulary(catalog, func(v *entities.Vehicle) string { return v.Class })
	t.fuelVocab = collectVocabulary(catalog, func(v *entities.Vehicle) string { return v.FuelType })

	return t
}

func collectVocabulary(catalog []*entities.Vehicle, field func(*entities.Vehicle) string) []string {
	seen := make(map[string]struct{})
	for _, vehicle := range catalog {
		seen[field(vehicle)] = struct{}{}
	}
	vocab := make([]string, 0, len(seen))
	for category := range seen {
		vocab = append(vocab, category)
	}
	sort.Strings(vocab)
	return vocab
}

// TransformVehicle maps a catalog row into the fitted feature space.
func (t *CatalogTransformer) TransformVehicle(v *entities.Vehicle) []float64 {
	return t.transform(vehicleNumericFeatures(v), v.Class, v.FuelType)
}

// TransformQuery maps a preference query into the fitted feature space.
// Categories not observed in the catalog, including the "Any" wildcard,
// encode as all zeros rather than failing.
func (t *CatalogTransformer) TransformQuery(q *entities.PreferenceQuery) []float64 {
	return t.transform(queryNumericFeatures(q), q.Class, q.FuelType)
}

func (t *CatalogTransformer) transform(numeric []float64, class, fuelType string) []float64 {
	vector := make([]float64, 0, len(numeric)+len(t.classVocab)+len(t.fuelVocab))
	for i, value := range numeric {
		vector = append(vector, (value-t.means[i])/t.scales[i])
	}
	vector = append(vector, oneHot(t.classVocab, class)...)
	vector = append(vector, oneHot(t.fuelVocab, fuelType)...)
	return vector
}

func oneHot(vocab []string, category string) []float64 {
	encoded := make([]float64, len(vocab))
	for i, known := range vocab {
		if known == category {
			encoded[i] = 1
			break
		}
	}
	return encoded
}

func euclideanDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// fittedMatcher is one catalog snapshot with its transformer and the
// pre-computed vector for every row.
type fittedMatcher struct {
	transformer *CatalogTransformer
	catalog     []*entities.Vehicle
	vectors     [][]float64
}

// RecommendationService ranks catalog vehicles by similarity to a buyer's
// preference query. The fitted transformer is cached until the catalog
// changes; Invalidate drops it so the next call refits.
type RecommendationService struct {
	vehicleRepo repositories.VehicleRepository

	mu     sync.RWMutex
	fitted *fittedMatcher
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(vehicleRepo repositories.VehicleRepository) *RecommendationService {
	return &RecommendationService{vehicleRepo: vehicleRepo}
}

// Recommend returns up to limit catalog vehicles ordered by ascending
// distance to the query. A non-positive limit means the default count;
// a limit larger than the catalog returns the whole catalog. An empty
// catalog yields an empty result, not an error.
func (s *RecommendationService) Recommend(ctx context.Context, query *entities.PreferenceQuery, limit int) ([]ScoredVehicle, error) {
	if query == nil {
		return nil, apperrors.NewValidationError("preference query is required")
	}
	query.ApplyDefaults()

	fitted, err := s.getFitted(ctx)
	if err != nil {
		return nil, err
	}

	if len(fitted.catalog) == 0 {
		return []ScoredVehicle{}, nil
	}

	if limit <= 0 {
		limit = DefaultRecommendationCount
	}
	if limit > len(fitted.catalog) {
		limit = len(fitted.catalog)
	}

	queryVector := fitted.transformer.TransformQuery(query)

	scored := make([]ScoredVehicle, len(fitted.catalog))
	for i, vehicle := range fitted.catalog {
		scored[i] = ScoredVehicle{
			Vehicle:  vehicle,
			Distance: euclideanDistance(queryVector, fitted.vectors[i]),
		}
	}

	// Stable sort keeps catalog order for equidistant rows
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Distance < scored[j].Distance
	})

	return scored[:limit], nil
}

// Invalidate drops the fitted transformer so the next Recommend call
// refits against a fresh catalog snapshot.
func (s *RecommendationService) Invalidate() {
	s.mu.Lock()
	s.fitted = nil
	s.mu.Unlock()
	log.Debug().Msg("Recommendation transformer invalidated")
}

func (s *RecommendationService) getFitted(ctx context.Context) (*fittedMatcher, error) {
	s.mu.RLock()
	fitted := s.fitted
	s.mu.RUnlock()
	if fitted != nil {
		return fitted, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fitted != nil {
		return s.fitted, nil
	}

	catalog, err := s.vehicleRepo.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	transformer := FitCatalogTransformer(catalog)
	vectors := make([][]float64, len(catalog))
	for i, vehicle := range catalog {
		vectors[i] = transformer.TransformVehicle(vehicle)
	}

	s.fitted = &fittedMatcher{
		transformer: transformer,
		catalog:     catalog,
		vectors:     vectors,
	}

	log.Info().Int("catalog_size", len(catalog)).Msg("Fitted recommendation transformer")

	return s.fitted, nil
}
