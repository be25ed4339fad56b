package resale

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
)

func TestDepreciationProvider_StandardCurve(t *testing.T) {
	provider := NewDepreciationProvider()
	vehicle := &entities.Vehicle{Price: 30000, LuxuryScore: 5}

	value, err := provider.EstimateResaleValue(context.Background(), vehicle, 5)
	require.NoError(t, err)

	// 30000 * 0.88^5
	assert.InDelta(t, 15832.37, value, 0.01)
}

func TestDepreciationProvider_LuxuryDepreciatesFaster(t *testing.T) {
	provider := NewDepreciationProvider()
	standard := &entities.Vehicle{Price: 60000, LuxuryScore: 7}
	luxury := &entities.Vehicle{Price: 60000, LuxuryScore: 8}

	standardValue, err := provider.EstimateResaleValue(context.Background(), standard, 5)
	require.NoError(t, err)
	luxuryValue, err := provider.EstimateResaleValue(context.Background(), luxury, 5)
	require.NoError(t, err)

	assert.Less(t, luxuryValue, standardValue)

	// 60000 * (1 - 0.12*1.2)^5
	assert.InDelta(t, 27592.31, luxuryValue, 0.01)
}

func TestDepreciationProvider_ZeroYears(t *testing.T) {
	provider := NewDepreciationProvider()
	vehicle := &entities.Vehicle{Price: 25000}

	value, err := provider.EstimateResaleValue(context.Background(), vehicle, 0)
	require.NoError(t, err)
	assert.Equal(t, 25000.0, value)
}

func TestDepreciationProvider_Validation(t *testing.T) {
	provider := NewDepreciationProvider()

	_, err := provider.EstimateResaleValue(context.Background(), nil, 5)
	assert.Error(t, err)

	_, err = provider.EstimateResaleValue(context.Background(), &entities.Vehicle{}, -1)
	assert.Error(t, err)
}

func TestMarketValueProvider_FetchesValuation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/valuations", r.URL.Path)
		assert.Equal(t, "Toyota", r.URL.Query().Get("make"))
		assert.Equal(t, "5", r.URL.Query().Get("age"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"estimated_value": 18250.50, "currency": "USD"}`))
	}))
	defer server.Close()

	provider := NewMarketValueProvider(server.URL, "test-key", nil)
	vehicle := &entities.Vehicle{ID: "veh-1", Make: "Toyota", Model: "Camry", Year: 2024, Price: 29000}

	value, err := provider.EstimateResaleValue(context.Background(), vehicle, 5)
	require.NoError(t, err)
	assert.Equal(t, 18250.50, value)
}

func TestMarketValueProvider_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewMarketValueProvider(server.URL, "test-key", nil)
	vehicle := &entities.Vehicle{ID: "veh-1", Make: "Toyota", Model: "Camry"}

	_, err := provider.EstimateResaleValue(context.Background(), vehicle, 5)
	assert.Error(t, err)
}

func TestMarketValueProvider_RejectsZeroValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"estimated_value": 0}`))
	}))
	defer server.Close()

	provider := NewMarketValueProvider(server.URL, "test-key", nil)
	vehicle := &entities.Vehicle{ID: "veh-1", Make: "Toyota", Model: "Camry"}

	_, err := provider.EstimateResaleValue(context.Background(), vehicle, 5)
	assert.Error(t, err)
}
