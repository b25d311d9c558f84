package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"weather-notifier/chart"
	"weather-notifier/config"
	"weather-notifier/datasource"
	"weather-notifier/logger"
	"weather-notifier/mailer"
	"weather-notifier/pipeline"
	"weather-notifier/providers/metno"
	"weather-notifier/providers/nominatim"
)

func main() {
	// Parse command line arguments
	configFile := flag.String("config", "", "Path to an optional YAML configuration file")
	envFile := flag.String("env", ".env", "Path to a .env file loaded into the environment")
	mode := flag.String("mode", "", "Run mode: umbrella, meteogram or report")
	chartPath := flag.String("out", "", "Where to write the meteogram PNG")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		logger.Warnf("%v", err)
	}

	resolver := config.NewResolver()
	resolver.Overrides = config.Config{
		Mode:      config.Mode(*mode),
		ChartPath: *chartPath,
		LogLevel:  *logLevel,
	}
	if *configFile != "" {
		file, err := config.LoadFile(*configFile)
		if err != nil {
			logger.Fatalf("Failed to load configuration: %v", err)
		}
		resolver.File = file
	}

	cfg, err := resolver.Resolve()
	if err != nil {
		logger.Fatalf("Failed to resolve configuration: %v", err)
	}
	logger.SetLevelName(cfg.LogLevel)
	logger.Debugf("Configuration: %+v", cfg.Redacted())

	// Nominatim allows one request per second; MET Norway asks for at most 20
	geocoder := datasource.NewRateLimitedGeocoder(nominatim.NewGeocoder(cfg.UserAgent), 1.0, 1)
	forecasts := datasource.NewRateLimitedForecastSource(metno.NewForecastSource(cfg.UserAgent), 20.0, 1)

	runner := &pipeline.Runner{
		Config:    cfg,
		Geocoder:  geocoder,
		Forecasts: forecasts,
		Sender:    mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.Email, cfg.Password),
		Show:      chart.Show,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		stop()
		logger.Fatalf("%s run failed: %v", cfg.Mode, err)
	}
	logger.Infof("%s run complete", cfg.Mode)
}
