// Package pipeline runs the fetch, summarise, render and notify sequence.
package pipeline

import (
	"context"
	"fmt"

	"weather-notifier/chart"
	"weather-notifier/config"
	"weather-notifier/datasource"
	"weather-notifier/logger"
	"weather-notifier/mailer"
	"weather-notifier/models"
	"weather-notifier/summary"

	"github.com/wneessen/go-mail"
)

// Sender delivers a composed message
type Sender interface {
	Send(ctx context.Context, msg *mail.Msg) error
}

// Viewer displays a rendered chart file
type Viewer func(path string) error

// Runner holds everything one run needs. Steps execute strictly in order and
// the first failure ends the run.
type Runner struct {
	Config    *config.Config
	Geocoder  datasource.Geocoder
	Forecasts datasource.ForecastSource
	Sender    Sender
	Show      Viewer
}

// Run executes the pipeline for the configured mode
func (r *Runner) Run(ctx context.Context) error {
	loc, err := r.Geocoder.Geocode(ctx, r.Config.Location)
	if err != nil {
		return fmt.Errorf("resolve location: %w", err)
	}

	forecast, err := r.Forecasts.FetchForecast(ctx, loc)
	if err != nil {
		return fmt.Errorf("fetch forecast from %s: %w", r.Forecasts.Name(), err)
	}

	switch r.Config.Mode {
	case config.ModeUmbrella:
		return r.umbrella(ctx, loc, forecast)
	case config.ModeMeteogram:
		return r.meteogram(forecast)
	case config.ModeReport:
		return r.report(ctx, loc, forecast)
	default:
		return fmt.Errorf("unknown mode %q", r.Config.Mode)
	}
}

// umbrella mails a warning when the first entry forecasts any rain in the next six hours
func (r *Runner) umbrella(ctx context.Context, loc models.Location, forecast *models.Forecast) error {
	entries, err := forecast.Window(1)
	if err != nil {
		return err
	}
	precip, err := entries[0].Precipitation6h()
	if err != nil {
		return err
	}

	s := summary.Summary{Location: loc, From: entries[0].Time, Precipitation6h: precip}
	if !s.WillRain() {
		logger.Infof("No precipitation forecast in %s for the next six hours, not sending", loc.Address)
		return nil
	}

	msg, err := mailer.NewUmbrellaMessage(r.Config.Email, r.Config.Recipient, s)
	if err != nil {
		return fmt.Errorf("compose email: %w", err)
	}
	if err := r.Sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// meteogram renders the next 48 hours and opens the chart
func (r *Runner) meteogram(forecast *models.Forecast) error {
	m, err := chart.FromForecast(forecast, chart.Window48, "Meteogram for next 48 hours")
	if err != nil {
		return fmt.Errorf("build chart: %w", err)
	}
	if err := m.SaveFile(r.Config.ChartPath); err != nil {
		return err
	}
	logger.Infof("Saved meteogram to %s", r.Config.ChartPath)

	if r.Show == nil {
		return nil
	}
	return r.Show(r.Config.ChartPath)
}

// report renders the next 24 hours and always mails the summary with the chart
func (r *Runner) report(ctx context.Context, loc models.Location, forecast *models.Forecast) error {
	s, err := summary.Summarize(loc, forecast)
	if err != nil {
		return fmt.Errorf("summarize forecast: %w", err)
	}
	logger.Infof("Next %d hours in %s: %s", s.Hours, loc.Address, s.Headline())

	m, err := chart.FromForecast(forecast, chart.Window24, "Meteogram for next 24 hours")
	if err != nil {
		return fmt.Errorf("build chart: %w", err)
	}
	if err := m.SaveFile(r.Config.ChartPath); err != nil {
		return err
	}

	msg, err := mailer.NewReportMessage(r.Config.Email, r.Config.Recipient, s, r.Config.ChartPath)
	if err != nil {
		return fmt.Errorf("compose email: %w", err)
	}
	if err := r.Sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
