package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"weather-notifier/chart"
	"weather-notifier/models"
	"weather-notifier/providers/metno"
	"weather-notifier/summary"
)

// Renders a meteogram without geocoding or email, either from a saved
// locationforecast document or from a live request for -lat/-lon.
func main() {
	in := flag.String("in", "", "Saved locationforecast compact JSON; fetched live when empty")
	lat := flag.Float64("lat", 59.9139, "Latitude for a live request")
	lon := flag.Float64("lon", 10.7522, "Longitude for a live request")
	hours := flag.Int("hours", chart.Window24, "Hours to plot")
	out := flag.String("out", "meteogram.png", "Output PNG")
	userAgent := flag.String("user-agent", "weather-notifier-chart-example/1.0", "User-Agent sent to MET Norway")
	flag.Parse()

	loc := models.Location{Address: fmt.Sprintf("%.4f, %.4f", *lat, *lon), Latitude: *lat, Longitude: *lon}

	var forecast *models.Forecast
	if *in != "" {
		data, err := os.ReadFile(*in)
		if err != nil {
			log.Fatalf("Error reading %s: %v", *in, err)
		}
		forecast = &models.Forecast{}
		if err := json.Unmarshal(data, forecast); err != nil {
			log.Fatalf("Error parsing %s: %v", *in, err)
		}
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		forecast, err = metno.NewForecastSource(*userAgent).FetchForecast(ctx, loc)
		if err != nil {
			log.Fatalf("Error fetching forecast: %v", err)
		}
	}

	m, err := chart.FromForecast(forecast, *hours, fmt.Sprintf("Meteogram for next %d hours", *hours))
	if err != nil {
		log.Fatalf("Error building chart: %v", err)
	}
	if err := m.SaveFile(*out); err != nil {
		log.Fatalf("Error saving chart: %v", err)
	}
	fmt.Printf("Wrote %s (%d hours, labels %v)\n", *out, len(m.Points), m.VisibleLabels())

	if s, err := summary.Summarize(loc, forecast); err == nil {
		fmt.Println()
		fmt.Print(s.Text())
	}
}
