package metno_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-notifier/models"
	"weather-notifier/models/forecasttest"
	"weather-notifier/providers/metno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oslo = models.Location{Address: "Oslo, Norway", Latitude: 59.912731, Longitude: 10.746090}

func TestFetchForecast_Success(t *testing.T) {
	var gotUA, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write(forecasttest.JSON(49, forecasttest.Defaults()))
	}))
	defer ts.Close()

	src := metno.NewForecastSource("weather-notifier/1.0 test@example.com").WithBaseURL(ts.URL)
	f, err := src.FetchForecast(context.Background(), oslo)
	require.NoError(t, err)

	assert.Equal(t, "weather-notifier/1.0 test@example.com", gotUA)
	assert.Equal(t, "lat=59.9127&lon=10.7461", gotQuery)
	assert.Equal(t, 49, f.Len())
	assert.Equal(t, forecasttest.Start, f.Properties.Timeseries[0].Time.UTC())
}

func TestFetchForecast_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		errMsg  string
	}{
		{
			name: "forbidden without user agent",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprint(w, "missing identification")
			},
			errMsg: "API error (status 403): missing identification",
		},
		{
			name: "malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"properties": `)
			},
			errMsg: "failed to parse API response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			src := metno.NewForecastSource("test").WithBaseURL(ts.URL)
			f, err := src.FetchForecast(context.Background(), oslo)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFetchForecast_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	src := metno.NewForecastSource("test").WithBaseURL(url)
	_, err := src.FetchForecast(context.Background(), oslo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send request")
}

func TestFetchForecast_Canceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(forecasttest.JSON(1, forecasttest.Defaults()))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := metno.NewForecastSource("test").WithBaseURL(ts.URL)
	_, err := src.FetchForecast(ctx, oslo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
