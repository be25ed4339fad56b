package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DatabaseConfig(t *testing.T) {
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_NAME", "cars_test")
	defer func() {
		os.Unsetenv("DB_HOST")
		os.Unsetenv("DB_NAME")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "cars_test", cfg.Database.Database)
	assert.Contains(t, cfg.Database.DatabaseDSN(), "dbname=cars_test")
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TYPESENSE_URL")
	os.Unsetenv("TYPESENSE_API_KEY")
	os.Unsetenv("RESALE_PROVIDER")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http://localhost:8108", cfg.Typesense.URL)
	assert.Equal(t, "xyz", cfg.Typesense.APIKey)
	assert.Equal(t, "depreciation", cfg.Resale.Provider)
	assert.Equal(t, "car_buyer_advisor", cfg.Database.Database)
	assert.Equal(t, 60, cfg.OpenAI.RateLimitRPM)
}

func TestLoad_OTELConfig(t *testing.T) {
	os.Setenv("OTEL_ENABLED", "true")
	os.Setenv("OTEL_ENDPOINT", "collector:4317")
	defer func() {
		os.Unsetenv("OTEL_ENABLED")
		os.Unsetenv("OTEL_ENDPOINT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.True(t, cfg.OTEL.Enabled)
	assert.Equal(t, "collector:4317", cfg.OTEL.Endpoint)
}
