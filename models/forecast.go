package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrIncompleteForecast is returned when the forecast is shorter than required
// or an entry lacks a field the caller reads.
var ErrIncompleteForecast = errors.New("incomplete forecast")

// IncompleteForecastError describes what part of the forecast is missing
type IncompleteForecastError struct {
	Index int    // entry index, -1 when the timeseries itself is too short
	Field string // JSON path of the missing field
	Want  int    // entries wanted (short timeseries only)
	Have  int    // entries available (short timeseries only)
}

func (e *IncompleteForecastError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: want %d timeseries entries, have %d", ErrIncompleteForecast, e.Want, e.Have)
	}
	return fmt.Sprintf("%s: timeseries[%d] has no %s", ErrIncompleteForecast, e.Index, e.Field)
}

// Is lets errors.Is match ErrIncompleteForecast
func (e *IncompleteForecastError) Is(target error) bool {
	return target == ErrIncompleteForecast
}

// Forecast is the locationforecast compact document as delivered by the provider
type Forecast struct {
	Type     string `json:"type"`
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"` // lon, lat, altitude
	} `json:"geometry"`
	Properties struct {
		Meta struct {
			UpdatedAt time.Time         `json:"updated_at"`
			Units     map[string]string `json:"units"`
		} `json:"meta"`
		Timeseries []Timeseries `json:"timeseries"`
	} `json:"properties"`
}

// Timeseries is a single timestamped forecast entry. Entries decoded from JSON
// or returned by Window know their position, which accessor errors report.
type Timeseries struct {
	Time time.Time `json:"time"`
	Data struct {
		Instant struct {
			Details InstantDetails `json:"details"`
		} `json:"instant"`
		Next1Hours  *Period `json:"next_1_hours,omitempty"`
		Next6Hours  *Period `json:"next_6_hours,omitempty"`
		Next12Hours *Period `json:"next_12_hours,omitempty"`
	} `json:"data"`

	index int
}

// InstantDetails holds readings valid at the entry's timestamp
type InstantDetails struct {
	AirTemperature        *float64 `json:"air_temperature,omitempty"`           // in Celsius
	WindSpeed             *float64 `json:"wind_speed,omitempty"`                // in m/s
	WindFromDirection     *float64 `json:"wind_from_direction,omitempty"`       // degrees
	RelativeHumidity      *float64 `json:"relative_humidity,omitempty"`         // percentage
	AirPressureAtSeaLevel *float64 `json:"air_pressure_at_sea_level,omitempty"` // hPa
	CloudAreaFraction     *float64 `json:"cloud_area_fraction,omitempty"`       // percentage
}

// Period holds accumulations and a weather symbol for the next N hours
type Period struct {
	Summary *PeriodSummary `json:"summary,omitempty"`
	Details *PeriodDetails `json:"details,omitempty"`
}

// PeriodSummary names the weather symbol for a period
type PeriodSummary struct {
	SymbolCode string `json:"symbol_code"`
}

// PeriodDetails holds accumulated values for a period
type PeriodDetails struct {
	PrecipitationAmount *float64 `json:"precipitation_amount,omitempty"` // in mm
}

// UnmarshalJSON decodes the document and numbers its timeseries entries
func (f *Forecast) UnmarshalJSON(data []byte) error {
	type plain Forecast
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	for i := range p.Properties.Timeseries {
		p.Properties.Timeseries[i].index = i
	}
	*f = Forecast(p)
	return nil
}

// Len returns the number of timeseries entries
func (f *Forecast) Len() int {
	return len(f.Properties.Timeseries)
}

// Window returns the first n entries of the timeseries
func (f *Forecast) Window(n int) ([]Timeseries, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid window size %d", n)
	}
	have := len(f.Properties.Timeseries)
	if n > have {
		return nil, &IncompleteForecastError{Index: -1, Want: n, Have: have}
	}

	entries := make([]Timeseries, n)
	copy(entries, f.Properties.Timeseries[:n])
	for i := range entries {
		entries[i].index = i
	}
	return entries, nil
}

func (t Timeseries) missing(field string) error {
	return &IncompleteForecastError{Index: t.index, Field: field}
}

// Temperature returns the instantaneous air temperature in Celsius
func (t Timeseries) Temperature() (float64, error) {
	if t.Data.Instant.Details.AirTemperature == nil {
		return 0, t.missing("data.instant.details.air_temperature")
	}
	return *t.Data.Instant.Details.AirTemperature, nil
}

// WindSpeed returns the instantaneous wind speed in m/s
func (t Timeseries) WindSpeed() (float64, error) {
	if t.Data.Instant.Details.WindSpeed == nil {
		return 0, t.missing("data.instant.details.wind_speed")
	}
	return *t.Data.Instant.Details.WindSpeed, nil
}

// Precipitation1h returns the precipitation expected over the next hour in mm
func (t Timeseries) Precipitation1h() (float64, error) {
	p := t.Data.Next1Hours
	if p == nil || p.Details == nil || p.Details.PrecipitationAmount == nil {
		return 0, t.missing("data.next_1_hours.details.precipitation_amount")
	}
	return *p.Details.PrecipitationAmount, nil
}

// Precipitation6h returns the precipitation expected over the next six hours in mm
func (t Timeseries) Precipitation6h() (float64, error) {
	p := t.Data.Next6Hours
	if p == nil || p.Details == nil || p.Details.PrecipitationAmount == nil {
		return 0, t.missing("data.next_6_hours.details.precipitation_amount")
	}
	return *p.Details.PrecipitationAmount, nil
}

// Symbol1h returns the weather symbol code summarising the next hour
func (t Timeseries) Symbol1h() (string, error) {
	p := t.Data.Next1Hours
	if p == nil || p.Summary == nil || p.Summary.SymbolCode == "" {
		return "", t.missing("data.next_1_hours.summary.symbol_code")
	}
	return p.Summary.SymbolCode, nil
}
