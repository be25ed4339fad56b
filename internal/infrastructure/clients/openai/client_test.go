package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/config"
)

func testVehicle() *entities.Vehicle {
	return &entities.Vehicle{
		Make:          "Toyota",
		Model:         "Prius",
		Year:          2024,
		CityMPG:       57,
		Acceleration:  7.2,
		CargoSpace:    20.3,
		Features:      "Toyota Safety Sense 3.0",
		ReviewSummary: "Pros: Incredible MPG. Cons: Rear headroom is tight.",
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(&config.OpenAIConfig{
		APIKey:       "test-key",
		Model:        "gpt-4o-mini",
		RateLimitRPM: -1, // disable the limiter in tests
	})
	assert.NoError(t, err)
	return client.WithBaseURL(baseURL)
}

func TestGeneratePitch_ParsesOutputText(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/responses", r.URL.Path)

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-4o-mini", payload["model"])

		resp := map[string]interface{}{
			"output": []map[string]interface{}{
				{
					"content": []map[string]string{
						{"type": "output_text", "text": "The 2024 Toyota Prius is a fuel-sipping standout."},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	pitch, err := client.GeneratePitch(context.Background(), testVehicle(), "Fuel Economy")
	assert.NoError(t, err)
	assert.Equal(t, "The 2024 Toyota Prius is a fuel-sipping standout.", pitch)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestGeneratePitch_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GeneratePitch(context.Background(), testVehicle(), "Balanced")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGeneratePitch_MissingOutputText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"output":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GeneratePitch(context.Background(), testVehicle(), "Balanced")
	assert.Error(t, err)
}

func TestGeneratePitch_NilVehicle(t *testing.T) {
	client := newTestClient(t, "http://unused")

	_, err := client.GeneratePitch(context.Background(), nil, "Balanced")
	assert.Error(t, err)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&config.OpenAIConfig{})
	assert.Error(t, err)
}
