package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-notifier/datasource"
	"weather-notifier/logger"
	"weather-notifier/models"
)

// DefaultBaseURL is the public OpenStreetMap search endpoint
const DefaultBaseURL = "https://nominatim.openstreetmap.org/search"

// Geocoder resolves place names with the OpenStreetMap Nominatim search API
type Geocoder struct {
	userAgent string
	baseURL   string
	client    *http.Client
}

// Ensure Geocoder implements datasource.Geocoder
var _ datasource.Geocoder = (*Geocoder)(nil)

// NewGeocoder creates a Nominatim geocoder identifying itself with userAgent
func NewGeocoder(userAgent string) *Geocoder {
	return &Geocoder{
		userAgent: userAgent,
		baseURL:   DefaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithBaseURL points the geocoder at a different endpoint
func (g *Geocoder) WithBaseURL(baseURL string) *Geocoder {
	g.baseURL = baseURL
	return g
}

// Name returns the geocoder name
func (g *Geocoder) Name() string {
	return "Nominatim"
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the best match for query
func (g *Geocoder) Geocode(ctx context.Context, query string) (models.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.Location{}, fmt.Errorf("%w: empty place name", datasource.ErrLocationNotFound)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	apiURL := g.baseURL + "?" + params.Encode()

	logger.Debugf("Making Nominatim search request to: %s", apiURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return models.Location{}, fmt.Errorf("failed to parse API response: %w", err)
	}

	if len(results) == 0 {
		return models.Location{}, fmt.Errorf("%w: %q", datasource.ErrLocationNotFound, query)
	}

	best := results[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid latitude %q for %q: %w", best.Lat, query, err)
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid longitude %q for %q: %w", best.Lon, query, err)
	}

	loc := models.Location{
		Query:     query,
		Address:   best.DisplayName,
		Latitude:  lat,
		Longitude: lon,
	}
	logger.Infof("Resolved %q to %s", query, loc)

	return loc, nil
}
