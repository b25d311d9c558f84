// Package chart builds and draws meteograms: hourly precipitation bars under
// a temperature line, on two y axes.
package chart

import (
	"fmt"
	"math"
	"time"

	"weather-notifier/models"
)

// Common chart windows in hours
const (
	Window24 = 24
	Window48 = 48
)

// Point is one hourly slot of the meteogram
type Point struct {
	Time          time.Time
	Label         string // hour of day, "HH"
	Visible       bool   // whether the x axis shows Label
	Precipitation float64
	Temperature   float64
}

// Meteogram is the data behind a rendered chart
type Meteogram struct {
	Title  string
	Points []Point
}

// New builds a meteogram from forecast entries.
// Tick labels are the hour of each timestamp as delivered (UTC); every
// other label is hidden so 24 or 48 of them stay readable.
func New(entries []models.Timeseries, title string) (*Meteogram, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries to plot", models.ErrIncompleteForecast)
	}

	m := &Meteogram{
		Title:  title,
		Points: make([]Point, 0, len(entries)),
	}
	for i, e := range entries {
		precip, err := e.Precipitation1h()
		if err != nil {
			return nil, err
		}
		temp, err := e.Temperature()
		if err != nil {
			return nil, err
		}

		m.Points = append(m.Points, Point{
			Time:          e.Time,
			Label:         e.Time.Format("15"),
			Visible:       i%2 == 0,
			Precipitation: precip,
			Temperature:   temp,
		})
	}
	return m, nil
}

// FromForecast takes the first hours entries of f and builds a meteogram
func FromForecast(f *models.Forecast, hours int, title string) (*Meteogram, error) {
	entries, err := f.Window(hours)
	if err != nil {
		return nil, err
	}
	return New(entries, title)
}

// Labels returns every tick label in order, hidden ones included
func (m *Meteogram) Labels() []string {
	labels := make([]string, len(m.Points))
	for i, p := range m.Points {
		labels[i] = p.Label
	}
	return labels
}

// VisibleLabels returns only the labels drawn on the x axis
func (m *Meteogram) VisibleLabels() []string {
	var labels []string
	for _, p := range m.Points {
		if p.Visible {
			labels = append(labels, p.Label)
		}
	}
	return labels
}

// PrecipitationRange returns the y range of the bar axis, starting at zero
func (m *Meteogram) PrecipitationRange() (lo, hi float64) {
	hi = 1
	for _, p := range m.Points {
		if p.Precipitation > hi {
			hi = p.Precipitation
		}
	}
	return 0, ceilTo(hi, 1)
}

// TemperatureRange returns the y range of the line axis
func (m *Meteogram) TemperatureRange() (lo, hi float64) {
	lo, hi = m.Points[0].Temperature, m.Points[0].Temperature
	for _, p := range m.Points[1:] {
		if p.Temperature < lo {
			lo = p.Temperature
		}
		if p.Temperature > hi {
			hi = p.Temperature
		}
	}
	return floorTo(lo-1, 5), ceilTo(hi+1, 5)
}

func ceilTo(v, step float64) float64 {
	return math.Ceil(v/step) * step
}

func floorTo(v, step float64) float64 {
	return math.Floor(v/step) * step
}
