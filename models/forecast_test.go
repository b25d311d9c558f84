package models_test

import (
	"encoding/json"
	"errors"
	"testing"

	"weather-notifier/models"
	"weather-notifier/models/forecasttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecast_DecodeCompact(t *testing.T) {
	raw := []byte(`{
	  "type": "Feature",
	  "geometry": {"type": "Point", "coordinates": [10.75, 59.91, 12]},
	  "properties": {
	    "meta": {"updated_at": "2020-07-23T10:01:02Z", "units": {"air_temperature": "celsius"}},
	    "timeseries": [
	      {
	        "time": "2020-07-23T11:00:00Z",
	        "data": {
	          "instant": {"details": {"air_temperature": 17.3, "wind_speed": 2.1}},
	          "next_1_hours": {"summary": {"symbol_code": "cloudy"}, "details": {"precipitation_amount": 0.0}},
	          "next_6_hours": {"summary": {"symbol_code": "lightrain"}, "details": {"precipitation_amount": 1.4}}
	        }
	      }
	    ]
	  }
	}`)

	var f models.Forecast
	require.NoError(t, json.Unmarshal(raw, &f))
	require.Equal(t, 1, f.Len())

	entries, err := f.Window(1)
	require.NoError(t, err)
	e := entries[0]

	assert.Equal(t, 11, e.Time.Hour())
	temp, err := e.Temperature()
	require.NoError(t, err)
	assert.Equal(t, 17.3, temp)

	wind, err := e.WindSpeed()
	require.NoError(t, err)
	assert.Equal(t, 2.1, wind)

	p1, err := e.Precipitation1h()
	require.NoError(t, err)
	assert.Equal(t, 0.0, p1)

	p6, err := e.Precipitation6h()
	require.NoError(t, err)
	assert.Equal(t, 1.4, p6)

	symbol, err := e.Symbol1h()
	require.NoError(t, err)
	assert.Equal(t, "cloudy", symbol)
}

func TestForecast_WindowTooShort(t *testing.T) {
	f := forecasttest.Build(10, forecasttest.Defaults())

	_, err := f.Window(24)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrIncompleteForecast))

	var incomplete *models.IncompleteForecastError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 24, incomplete.Want)
	assert.Equal(t, 10, incomplete.Have)
	assert.Contains(t, err.Error(), "want 24 timeseries entries, have 10")
}

func TestForecast_WindowSizes(t *testing.T) {
	f := forecasttest.Build(5, forecasttest.Defaults())

	tests := []struct {
		name       string
		n          int
		wantLen    int
		wantErr    string
		incomplete bool
	}{
		{name: "empty", n: 0, wantLen: 0},
		{name: "partial", n: 3, wantLen: 3},
		{name: "all", n: 5, wantLen: 5},
		{name: "too long", n: 6, wantErr: "want 6 timeseries entries, have 5", incomplete: true},
		{name: "negative", n: -1, wantErr: "invalid window size -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := f.Window(tt.n)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.incomplete, errors.Is(err, models.ErrIncompleteForecast))
				assert.Nil(t, entries)
				return
			}
			require.NoError(t, err)
			assert.Len(t, entries, tt.wantLen)
		})
	}
}

func TestForecast_DecodeNumbersEntries(t *testing.T) {
	f := forecasttest.Build(4, forecasttest.Defaults())
	f.Properties.Timeseries[3].Data.Instant.Details.AirTemperature = nil
	raw, err := json.Marshal(f)
	require.NoError(t, err)

	var decoded models.Forecast
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, 4, decoded.Len())

	_, err = decoded.Properties.Timeseries[3].Temperature()
	require.Error(t, err)

	var incomplete *models.IncompleteForecastError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 3, incomplete.Index)
	assert.Contains(t, err.Error(), "timeseries[3] has no data.instant.details.air_temperature")
}

func TestForecast_WindowDoesNotAlias(t *testing.T) {
	f := forecasttest.Build(3, forecasttest.Defaults())

	entries, err := f.Window(3)
	require.NoError(t, err)
	entries[0].Data.Next1Hours = nil

	_, err = f.Properties.Timeseries[0].Symbol1h()
	assert.NoError(t, err)
}

func TestTimeseries_MissingFields(t *testing.T) {
	f := forecasttest.Build(4, forecasttest.Defaults())
	f.Properties.Timeseries[2].Data.Next1Hours = nil
	f.Properties.Timeseries[3].Data.Instant.Details.WindSpeed = nil
	f.Properties.Timeseries[1].Data.Next6Hours.Details = nil

	entries, err := f.Window(4)
	require.NoError(t, err)

	tests := []struct {
		name  string
		call  func() error
		index int
		field string
	}{
		{
			name:  "next_1_hours precipitation",
			call:  func() error { _, err := entries[2].Precipitation1h(); return err },
			index: 2,
			field: "data.next_1_hours.details.precipitation_amount",
		},
		{
			name:  "next_1_hours symbol",
			call:  func() error { _, err := entries[2].Symbol1h(); return err },
			index: 2,
			field: "data.next_1_hours.summary.symbol_code",
		},
		{
			name:  "wind speed",
			call:  func() error { _, err := entries[3].WindSpeed(); return err },
			index: 3,
			field: "data.instant.details.wind_speed",
		},
		{
			name:  "next_6_hours precipitation",
			call:  func() error { _, err := entries[1].Precipitation6h(); return err },
			index: 1,
			field: "data.next_6_hours.details.precipitation_amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrIncompleteForecast)

			var incomplete *models.IncompleteForecastError
			require.True(t, errors.As(err, &incomplete))
			assert.Equal(t, tt.index, incomplete.Index)
			assert.Equal(t, tt.field, incomplete.Field)
		})
	}
}

func TestLocation_String(t *testing.T) {
	loc := models.Location{Address: "Oslo, Norway", Latitude: 59.91273, Longitude: 10.74609}
	assert.Equal(t, "Oslo, Norway (59.9127, 10.7461)", loc.String())
}
