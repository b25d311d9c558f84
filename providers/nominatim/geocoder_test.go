package nominatim_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-notifier/datasource"
	"weather-notifier/providers/nominatim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode_Success(t *testing.T) {
	var gotUA string
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[{"place_id": 1, "lat": "51.5073219", "lon": "-0.1276474", "display_name": "London, Greater London, England, United Kingdom"}]`)
	}))
	defer ts.Close()

	g := nominatim.NewGeocoder("weather-notifier/1.0").WithBaseURL(ts.URL)
	loc, err := g.Geocode(context.Background(), "  London ")
	require.NoError(t, err)

	assert.Equal(t, "weather-notifier/1.0", gotUA)
	assert.Equal(t, []string{"London"}, gotQuery["q"])
	assert.Equal(t, []string{"jsonv2"}, gotQuery["format"])
	assert.Equal(t, []string{"1"}, gotQuery["limit"])

	assert.Equal(t, "London", loc.Query)
	assert.Equal(t, "London, Greater London, England, United Kingdom", loc.Address)
	assert.InDelta(t, 51.5073219, loc.Latitude, 1e-9)
	assert.InDelta(t, -0.1276474, loc.Longitude, 1e-9)
}

func TestGeocode_Failures(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		status      int
		body        string
		notFound    bool
		errContains string
	}{
		{
			name:        "no results",
			query:       "Atlantis",
			status:      http.StatusOK,
			body:        `[]`,
			notFound:    true,
			errContains: `location not found: "Atlantis"`,
		},
		{
			name:        "empty query",
			query:       "   ",
			notFound:    true,
			errContains: "empty place name",
		},
		{
			name:        "bad coordinates",
			query:       "Nowhere",
			status:      http.StatusOK,
			body:        `[{"lat": "north", "lon": "0", "display_name": "Nowhere"}]`,
			errContains: `invalid latitude "north"`,
		},
		{
			name:        "server error",
			query:       "Oslo",
			status:      http.StatusTooManyRequests,
			body:        "slow down",
			errContains: "API error (status 429): slow down",
		},
		{
			name:        "malformed body",
			query:       "Oslo",
			status:      http.StatusOK,
			body:        `{"error": "oops"}`,
			errContains: "failed to parse API response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			g := nominatim.NewGeocoder("test").WithBaseURL(ts.URL)
			_, err := g.Geocode(context.Background(), tt.query)
			require.Error(t, err)
			assert.Equal(t, tt.notFound, errors.Is(err, datasource.ErrLocationNotFound))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
