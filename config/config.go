// Package config resolves the run configuration from the environment, an
// optional YAML file, built-in defaults and finally interactive prompts.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which version of the pipeline runs
type Mode string

const (
	// ModeUmbrella mails a plain-text warning when rain is due in the next six hours
	ModeUmbrella Mode = "umbrella"
	// ModeMeteogram renders a 48 hour chart and opens it
	ModeMeteogram Mode = "meteogram"
	// ModeReport renders a 24 hour chart and always mails it with a summary
	ModeReport Mode = "report"
)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeUmbrella, ModeMeteogram, ModeReport:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want umbrella, meteogram or report)", s)
	}
}

// SendsMail reports whether the mode needs SMTP credentials
func (m Mode) SendsMail() bool {
	return m == ModeUmbrella || m == ModeReport
}

// Config is the resolved configuration handed down the pipeline
type Config struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Recipient string `yaml:"recipient"`
	Location  string `yaml:"location"`

	SMTPHost  string `yaml:"smtp_host"`
	SMTPPort  int    `yaml:"smtp_port"`
	UserAgent string `yaml:"user_agent"`
	Mode      Mode   `yaml:"mode"`
	ChartPath string `yaml:"chart_path"`
	LogLevel  string `yaml:"log_level"`
}

// Default values for settings that are not secrets
const (
	DefaultSMTPHost  = "smtp.gmail.com"
	DefaultSMTPPort  = 465
	DefaultUserAgent = "weather-notifier/1.0"
	DefaultMode      = ModeReport
	DefaultChartPath = "meteogram.png"
	DefaultLogLevel  = "info"
)

// DefaultConfig creates a configuration holding only the defaults
func DefaultConfig() *Config {
	return &Config{
		SMTPHost:  DefaultSMTPHost,
		SMTPPort:  DefaultSMTPPort,
		UserAgent: DefaultUserAgent,
		Mode:      DefaultMode,
		ChartPath: DefaultChartPath,
		LogLevel:  DefaultLogLevel,
	}
}

// Validate checks that everything the selected mode needs is present
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseMode(string(c.Mode)); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, errors.New("location is required"))
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		errs = append(errs, errors.New("user agent is required"))
	}
	if c.Mode != ModeUmbrella && c.ChartPath == "" {
		errs = append(errs, errors.New("chart path is required"))
	}

	if c.Mode.SendsMail() {
		if c.Email == "" {
			errs = append(errs, errors.New("email is required"))
		}
		if c.Password == "" {
			errs = append(errs, errors.New("password is required"))
		}
		if c.Recipient == "" {
			errs = append(errs, errors.New("recipient is required"))
		}
		if c.SMTPHost == "" {
			errs = append(errs, errors.New("SMTP host is required"))
		}
		if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
			errs = append(errs, fmt.Errorf("SMTP port %d out of range", c.SMTPPort))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Redacted returns a copy safe to log
func (c Config) Redacted() Config {
	if c.Password != "" {
		c.Password = "********"
	}
	return c
}
