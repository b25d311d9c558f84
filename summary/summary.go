// Package summary turns the first hours of a forecast into a short description.
package summary

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"weather-notifier/logger"
	"weather-notifier/models"
)

// Hours is how many hourly entries the summary looks at
const Hours = 6

// Summary is the human-readable digest of the next few hours
type Summary struct {
	Location        models.Location
	From            time.Time
	Hours           int
	MeanTemperature float64 // Celsius
	TemperatureBand string
	MeanWindMph     float64
	WindBand        string
	Symbols         []string // one emoji per hour, unknown codes omitted
	Precipitation6h float64  // mm over the next six hours
}

// Summarize derives a Summary from the first Hours entries of f
func Summarize(loc models.Location, f *models.Forecast) (Summary, error) {
	entries, err := f.Window(Hours)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Location: loc,
		From:     entries[0].Time,
		Hours:    Hours,
	}

	var tempSum, windSum float64
	for _, e := range entries {
		temp, err := e.Temperature()
		if err != nil {
			return Summary{}, err
		}
		wind, err := e.WindSpeed()
		if err != nil {
			return Summary{}, err
		}
		tempSum += temp
		windSum += wind

		code, err := e.Symbol1h()
		if err != nil {
			return Summary{}, err
		}
		emoji, ok := Emoji(code)
		if !ok {
			logger.Warnf("No emoji for weather symbol %q at %s, leaving it out", code, e.Time.Format(time.RFC3339))
			continue
		}
		s.Symbols = append(s.Symbols, emoji)
	}

	s.MeanTemperature = tempSum / float64(len(entries))
	s.TemperatureBand = TemperatureBand(s.MeanTemperature)
	s.MeanWindMph = MetresPerSecondToMph(windSum / float64(len(entries)))
	s.WindBand = WindBand(s.MeanWindMph)

	if s.Precipitation6h, err = entries[0].Precipitation6h(); err != nil {
		return Summary{}, err
	}

	return s, nil
}

// Headline is a short description such as "quite chilly and breezy"
func (s Summary) Headline() string {
	return s.TemperatureBand + " and " + s.WindBand
}

// WillRain reports whether any precipitation is forecast in the next six hours
func (s Summary) WillRain() bool {
	return s.Precipitation6h > 0
}

// RainPhrase returns the precipitation sentence, or "" when none is forecast
func (s Summary) RainPhrase() string {
	if !s.WillRain() {
		return ""
	}
	return fmt.Sprintf("%smm of precipitation is forecast in %s in the next six hours.",
		formatAmount(s.Precipitation6h), s.Location.Address)
}

// formatAmount prints the shortest decimal that reads back as v, keeping
// ".0" on whole numbers the way the provider writes them
func formatAmount(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// Text renders the summary as a plain-text message body
func (s Summary) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weather for %s from %s UTC:\n\n", s.Location.Address, s.From.UTC().Format("15:04 on Mon 2 Jan"))
	fmt.Fprintf(&b, "Over the next %d hours it will be %s (%.1f°C on average) and %s (%.1f mph on average).\n",
		s.Hours, s.TemperatureBand, s.MeanTemperature, s.WindBand, s.MeanWindMph)

	if len(s.Symbols) > 0 {
		fmt.Fprintf(&b, "\n%s\n", strings.Join(s.Symbols, " "))
	}

	if phrase := s.RainPhrase(); phrase != "" {
		fmt.Fprintf(&b, "\n%s\n", phrase)
	}

	return b.String()
}
