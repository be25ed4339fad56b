package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
)

func TestBuildFilterBy(t *testing.T) {
	maxPrice := 35000.0

	tests := []struct {
		name   string
		params repositories.SearchParams
		want   string
	}{
		{
			name:   "no filters",
			params: repositories.SearchParams{},
			want:   "is_active:=true",
		},
		{
			name:   "wildcards ignored",
			params: repositories.SearchParams{Class: "Any", FuelType: "Any"},
			want:   "is_active:=true",
		},
		{
			name:   "class and fuel",
			params: repositories.SearchParams{Class: "SUV", FuelType: "Hybrid"},
			want:   "is_active:=true && class:=SUV && fuel_type:=Hybrid",
		},
		{
			name:   "max price",
			params: repositories.SearchParams{MaxPrice: &maxPrice},
			want:   "is_active:=true && price:<=35000.000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildFilterBy(tt.params))
		})
	}
}

func TestVehicleDocumentRoundTrip(t *testing.T) {
	vehicle := &entities.Vehicle{
		ID:            "veh-1",
		Make:          "Kia",
		Model:         "EV6",
		Year:          2024,
		Class:         "SUV",
		FuelType:      entities.FuelTypeElectric,
		Price:         43000,
		CityMPG:       117,
		Features:      "Highway Driving Assist 2",
		ReviewSummary: "Pros: Fast charging.",
		Seats:         5,
		IsActive:      true,
		CreatedAt:     time.Unix(1700000000, 0),
	}

	doc := vehicleDocument(vehicle)
	assert.Equal(t, int64(1700000000), doc["created_at"])

	// Typesense hands numerics back as float64
	doc["year"] = float64(2024)
	doc["seats"] = float64(5)

	got := vehicleFromDocument(doc)
	assert.Equal(t, vehicle.ID, got.ID)
	assert.Equal(t, vehicle.Make, got.Make)
	assert.Equal(t, vehicle.Year, got.Year)
	assert.Equal(t, vehicle.Seats, got.Seats)
	assert.Equal(t, vehicle.FuelType, got.FuelType)
	assert.True(t, got.IsActive)
}

func TestVehicleFromDocumentMissingFields(t *testing.T) {
	got := vehicleFromDocument(map[string]interface{}{"id": "veh-2"})
	assert.Equal(t, "veh-2", got.ID)
	assert.Zero(t, got.Price)
	assert.False(t, got.IsActive)
}
