package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/application/services"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/errors"
)

// stubRepo serves a fixed set of vehicles keyed by ID
type stubRepo struct {
	repositories.VehicleRepository
	vehicles map[string]*entities.Vehicle
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	if vehicle, ok := s.vehicles[id]; ok {
		return vehicle, nil
	}
	return nil, apperrors.NewNotFoundError("vehicle not found")
}

func (s *stubRepo) List(ctx context.Context, filter repositories.VehicleFilter) ([]*entities.Vehicle, error) {
	var out []*entities.Vehicle
	for _, vehicle := range s.vehicles {
		out = append(out, vehicle)
	}
	return out, nil
}

func (s *stubRepo) Catalog(ctx context.Context) ([]*entities.Vehicle, error) {
	return s.List(ctx, repositories.VehicleFilter{})
}

func testCatalog() map[string]*entities.Vehicle {
	return map[string]*entities.Vehicle{
		"veh-1": {
			ID: "veh-1", Make: "Toyota", Model: "Camry", Year: 2024, Class: "Sedan",
			FuelType: entities.FuelTypeGas, Price: 30000, CityMPG: 25, HwyMPG: 30,
			ReliabilityScore: 8, LuxuryScore: 5, Seats: 5, IsActive: true,
		},
	}
}

func newVehicleHandler() *VehicleHandler {
	repo := &stubRepo{vehicles: testCatalog()}
	return NewVehicleHandler(services.NewCatalogService(repo, nil, nil))
}

func TestGetVehicle(t *testing.T) {
	handler := newVehicleHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/veh-1", nil)
	req.SetPathValue("id", "veh-1")
	rec := httptest.NewRecorder()

	handler.GetVehicle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var vehicle entities.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicle))
	assert.Equal(t, "Camry", vehicle.Model)
}

func TestGetVehicle_NotFound(t *testing.T) {
	handler := newVehicleHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/ghost", nil)
	req.SetPathValue("id", "ghost")
	rec := httptest.NewRecorder()

	handler.GetVehicle(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListVehicles(t *testing.T) {
	handler := newVehicleHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles?class=Sedan&max_price=40000", nil)
	rec := httptest.NewRecorder()

	handler.ListVehicles(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["count"])
}

func TestRecommendEndpoint(t *testing.T) {
	repo := &stubRepo{vehicles: testCatalog()}
	handler := NewRecommendationHandler(services.NewRecommendationService(repo))

	payload := `{"preferences": {"class": "Sedan", "price": 30000}, "limit": 3}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()

	handler.Recommend(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Recommendations []services.ScoredVehicle `json:"recommendations"`
		Count           int                      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "veh-1", body.Recommendations[0].Vehicle.ID)
}

func TestRecommendEndpoint_BadBody(t *testing.T) {
	handler := NewRecommendationHandler(services.NewRecommendationService(&stubRepo{}))

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()

	handler.Recommend(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectCostEndpoint(t *testing.T) {
	repo := &stubRepo{vehicles: testCatalog()}
	catalogService := services.NewCatalogService(repo, nil, nil)
	handler := NewCostHandler(catalogService, services.NewOwnershipCostService(nil))

	payload := `{"method": "Finance", "apr": 0, "term": 60, "down_payment": 0, "annual_miles": 12000}`
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/veh-1/cost", bytes.NewBufferString(payload))
	req.SetPathValue("id", "veh-1")
	rec := httptest.NewRecorder()

	handler.ProjectCost(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Finance", body["buying_method"])
	assert.Equal(t, 500.00, body["Monthly Payment"])
}

func TestProjectCostEndpoint_UnknownVehicle(t *testing.T) {
	repo := &stubRepo{vehicles: testCatalog()}
	catalogService := services.NewCatalogService(repo, nil, nil)
	handler := NewCostHandler(catalogService, services.NewOwnershipCostService(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/ghost/cost", bytes.NewBufferString(`{}`))
	req.SetPathValue("id", "ghost")
	rec := httptest.NewRecorder()

	handler.ProjectCost(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPitchEndpoint_FallbackCopy(t *testing.T) {
	repo := &stubRepo{vehicles: testCatalog()}
	handler := NewPitchHandler(services.NewPitchService(repo, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/veh-1/pitch", bytes.NewBufferString(`{"priority": "Reliability"}`))
	req.SetPathValue("id", "veh-1")
	rec := httptest.NewRecorder()

	handler.GetPitch(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "This Camry is a fantastic choice for Reliability.", body["pitch"])
}
