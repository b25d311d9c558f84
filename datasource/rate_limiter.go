package datasource

import (
	"context"
	"fmt"

	"weather-notifier/models"

	"golang.org/x/time/rate"
)

// RateLimitedGeocoder wraps a Geocoder with rate limiting
type RateLimitedGeocoder struct {
	geocoder Geocoder
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedGeocoder creates a new rate limited geocoder
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedGeocoder(geocoder Geocoder, rps float64, burst int) *RateLimitedGeocoder {
	return &RateLimitedGeocoder{
		geocoder: geocoder,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", geocoder.Name()),
	}
}

// Geocode resolves a place name, respecting rate limits
func (r *RateLimitedGeocoder) Geocode(ctx context.Context, query string) (models.Location, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Location{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	return r.geocoder.Geocode(ctx, query)
}

// Name returns the geocoder name
func (r *RateLimitedGeocoder) Name() string {
	return r.name
}

// RateLimitedForecastSource wraps a ForecastSource with rate limiting
type RateLimitedForecastSource struct {
	source  ForecastSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedForecastSource creates a new rate limited forecast source
// rps is the maximum requests per second allowed
// burst is the maximum burst size allowed
func NewRateLimitedForecastSource(source ForecastSource, rps float64, burst int) *RateLimitedForecastSource {
	return &RateLimitedForecastSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedForecastSource) FetchForecast(ctx context.Context, loc models.Location) (*models.Forecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying source
	return r.source.FetchForecast(ctx, loc)
}

// Name returns the source name
func (r *RateLimitedForecastSource) Name() string {
	return r.name
}

// Verify that our rate limited types implement the required interfaces
var (
	_ Geocoder       = (*RateLimitedGeocoder)(nil)
	_ ForecastSource = (*RateLimitedForecastSource)(nil)
)
