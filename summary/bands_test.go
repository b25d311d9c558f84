package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetresPerSecondToMph(t *testing.T) {
	assert.Equal(t, 2.237, MetresPerSecondToMph(1.0))
	assert.Equal(t, 0.0, MetresPerSecondToMph(0))
	assert.InDelta(t, 22.37, MetresPerSecondToMph(10), 1e-9)
}

func TestTemperatureBand(t *testing.T) {
	tests := []struct {
		celsius float64
		want    string
	}{
		{-12, "freezing"},
		{0, "freezing"},
		{0.1, "cold"},
		{4.99, "cold"},
		{5.0, "quite chilly"},
		{9.9, "quite chilly"},
		{10, "cool"},
		{15.9, "cool"},
		{16, "warm"},
		{24.9, "warm"},
		{25, "hot"},
		{31.99, "hot"},
		{32.0, "very hot"},
		{41, "very hot"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TemperatureBand(tt.celsius), "TemperatureBand(%v)", tt.celsius)
	}
}

func TestWindBand(t *testing.T) {
	tests := []struct {
		mph  float64
		want string
	}{
		{0, "calm"},
		{3.99, "calm"},
		{4, "slightly breezy"},
		{12.9, "slightly breezy"},
		{13, "breezy"},
		{24.9, "breezy"},
		{25, "windy"},
		{38.9, "windy"},
		{39, "very windy"},
		{80, "very windy"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WindBand(tt.mph), "WindBand(%v)", tt.mph)
	}
}

func TestEmoji(t *testing.T) {
	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{"clearsky_day", "☀️", true},
		{"clearsky_night", "☀️", true},
		{"partlycloudy_polartwilight", "⛅", true},
		{"cloudy", "☁️", true},
		{"heavyrain", "🌧️", true},
		{"rainshowersandthunder_day", "⛈️", true},
		{"lightssnowshowersandthunder_night", "⛈️", true},
		{"fog", "🌫️", true},
		{"tornado", "", false},
		{"", "", false},
		{"cloudy_evening", "", false},
	}

	for _, tt := range tests {
		got, ok := Emoji(tt.code)
		assert.Equal(t, tt.wantOK, ok, "Emoji(%q) ok", tt.code)
		assert.Equal(t, tt.want, got, "Emoji(%q)", tt.code)
	}
}
