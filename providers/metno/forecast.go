package metno

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-notifier/datasource"
	"weather-notifier/logger"
	"weather-notifier/models"
)

// DefaultBaseURL is the locationforecast compact endpoint
const DefaultBaseURL = "https://api.met.no/weatherapi/locationforecast/2.0/compact"

// ForecastSource provides hourly forecasts from MET Norway's locationforecast product
type ForecastSource struct {
	userAgent string
	baseURL   string
	client    *http.Client
}

// Ensure ForecastSource implements datasource.ForecastSource
var _ datasource.ForecastSource = (*ForecastSource)(nil)

// NewForecastSource creates a new forecast source.
// The provider's terms of service reject requests without an identifying User-Agent.
func NewForecastSource(userAgent string) *ForecastSource {
	return &ForecastSource{
		userAgent: userAgent,
		baseURL:   DefaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithBaseURL points the source at a different endpoint
func (m *ForecastSource) WithBaseURL(baseURL string) *ForecastSource {
	m.baseURL = baseURL
	return m
}

// Name returns the provider name
func (m *ForecastSource) Name() string {
	return "MET Norway"
}

// FetchForecast gets the compact locationforecast for loc
func (m *ForecastSource) FetchForecast(ctx context.Context, loc models.Location) (*models.Forecast, error) {
	// The API asks for at most four decimals; more only defeats its cache
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(loc.Latitude, 'f', 4, 64))
	params.Set("lon", strconv.FormatFloat(loc.Longitude, 'f', 4, 64))
	apiURL := m.baseURL + "?" + params.Encode()

	logger.Debugf("Making MET Norway forecast request to: %s", apiURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", m.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var forecast models.Forecast
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	logger.Infof("Fetched %d forecast entries for %s (updated %s)",
		forecast.Len(), loc.Address, forecast.Properties.Meta.UpdatedAt.Format(time.RFC3339))

	return &forecast, nil
}
