// Package forecasttest builds synthetic locationforecast documents for tests.
package forecasttest

import (
	"encoding/json"
	"time"

	"weather-notifier/models"
)

// Start is the timestamp of the first generated entry
var Start = time.Date(2020, 7, 23, 0, 0, 0, 0, time.UTC)

// Options controls the generated values
type Options struct {
	Temperature func(i int) float64
	WindSpeed   func(i int) float64
	Precip1h    func(i int) float64
	Precip6h    float64
	Symbols     []string
}

// Defaults returns mild, dry, slightly breezy weather
func Defaults() Options {
	return Options{
		Temperature: func(i int) float64 { return 12 + float64(i%6) },
		WindSpeed:   func(i int) float64 { return 4 },
		Precip1h:    func(i int) float64 { return 0 },
		Precip6h:    0,
		Symbols:     []string{"clearsky_day", "fair_day", "partlycloudy_day", "cloudy", "lightrain", "rain"},
	}
}

// Build returns a forecast with n hourly entries
func Build(n int, opts Options) *models.Forecast {
	f := &models.Forecast{Type: "Feature"}
	f.Geometry.Type = "Point"
	f.Geometry.Coordinates = []float64{-0.1276, 51.5072, 11}
	f.Properties.Meta.UpdatedAt = Start.Add(-30 * time.Minute)
	f.Properties.Meta.Units = map[string]string{
		"air_temperature":      "celsius",
		"precipitation_amount": "mm",
		"wind_speed":           "m/s",
	}

	for i := 0; i < n; i++ {
		var ts models.Timeseries
		ts.Time = Start.Add(time.Duration(i) * time.Hour)
		ts.Data.Instant.Details.AirTemperature = ptr(opts.Temperature(i))
		ts.Data.Instant.Details.WindSpeed = ptr(opts.WindSpeed(i))

		symbol := ""
		if len(opts.Symbols) > 0 {
			symbol = opts.Symbols[i%len(opts.Symbols)]
		}
		ts.Data.Next1Hours = &models.Period{
			Summary: &models.PeriodSummary{SymbolCode: symbol},
			Details: &models.PeriodDetails{PrecipitationAmount: ptr(opts.Precip1h(i))},
		}
		ts.Data.Next6Hours = &models.Period{
			Summary: &models.PeriodSummary{SymbolCode: symbol},
			Details: &models.PeriodDetails{PrecipitationAmount: ptr(opts.Precip6h)},
		}
		f.Properties.Timeseries = append(f.Properties.Timeseries, ts)
	}
	return f
}

// JSON returns Build(n, opts) encoded the way the provider serves it
func JSON(n int, opts Options) []byte {
	data, err := json.Marshal(Build(n, opts))
	if err != nil {
		panic(err)
	}
	return data
}

func ptr(v float64) *float64 {
	return &v
}
