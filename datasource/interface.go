package datasource

import (
	"context"
	"errors"

	"weather-notifier/models"
)

// ErrLocationNotFound is returned when a geocoder has no match for a place name
var ErrLocationNotFound = errors.New("location not found")

// Geocoder is an interface for services that turn a place name into coordinates
type Geocoder interface {
	// Geocode resolves a free-text place name to a single location
	Geocode(ctx context.Context, query string) (models.Location, error)

	// Name returns the geocoder's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the hourly forecast for a location
	FetchForecast(ctx context.Context, loc models.Location) (*models.Forecast, error)

	// Name returns the source's name
	Name() string
}
