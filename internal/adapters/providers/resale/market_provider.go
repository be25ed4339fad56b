package resale

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/providers"
)

const (
	defaultMarketCacheTTL = 60 * 60 * 24 // valuations move slowly, 1 day
	defaultHTTPTimeout    = 8 * time.Second
)

// MarketValueProvider implements ResaleValueProvider against an external
// vehicle-valuation HTTP API. Responses are cached because valuations are
// expensive and change on the order of days, not requests.
type MarketValueProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      providers.CacheProvider
}

var _ providers.ResaleValueProvider = (*MarketValueProvider)(nil)

// NewMarketValueProvider creates a new market valuation provider.
func NewMarketValueProvider(baseURL, apiKey string, cache providers.CacheProvider) *MarketValueProvider {
	return NewMarketValueProviderWithOptions(baseURL, apiKey, cache, nil)
}

// NewMarketValueProviderWithOptions allows overriding the HTTP client (used for tests).
func NewMarketValueProviderWithOptions(baseURL, apiKey string, cache providers.CacheProvider, httpClient *http.Client) *MarketValueProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &MarketValueProvider{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cache:      cache,
	}
}

type marketValueResponse struct {
	EstimatedValue float64 `json:"estimated_value"`
	Currency       string  `json:"currency"`
}

// EstimateResaleValue asks the valuation API what the vehicle will be
// worth after the given number of ownership years.
func (p *MarketValueProvider) EstimateResaleValue(ctx context.Context, vehicle *entities.Vehicle, years int) (float64, error) {
	if vehicle == nil {
		return 0, fmt.Errorf("vehicle is required")
	}

	cacheKey := fmt.Sprintf("resale:%s:%d", vehicle.ID, years)
	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			if value, err := strconv.ParseFloat(string(cached), 64); err == nil {
				return value, nil
			}
		}
	}

	query := url.Values{
		"make":  []string{vehicle.Make},
		"model": []string{vehicle.Model},
		"year":  []string{strconv.Itoa(vehicle.Year)},
		"msrp":  []string{strconv.FormatFloat(vehicle.Price, 'f', 2, 64)},
		"age":   []string{strconv.Itoa(years)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/valuations?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build valuation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("valuation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("valuation API returned status %d", resp.StatusCode)
	}

	var payload marketValueResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode valuation response: %w", err)
	}

	if payload.EstimatedValue <= 0 {
		return 0, fmt.Errorf("valuation API returned no value for %s", vehicle.DisplayName())
	}

	if p.cache != nil {
		value := strconv.FormatFloat(payload.EstimatedValue, 'f', 2, 64)
		_ = p.cache.Set(ctx, cacheKey, []byte(value), defaultMarketCacheTTL)
	}

	return payload.EstimatedValue, nil
}
