package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"weather-notifier/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	EnvEmail     = "EMAIL"
	EnvPassword  = "PASSWORD"
	EnvRecipient = "RECIPIENT"
	EnvLocation  = "LOCATION"
	EnvSMTPHost  = "SMTP_HOST"
	EnvSMTPPort  = "SMTP_PORT"
	EnvUserAgent = "USER_AGENT"
	EnvMode      = "MODE"
	EnvChartPath = "CHART_PATH"
	EnvLogLevel  = "LOG_LEVEL"
)

// LoadDotEnv loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadFile loads a YAML configuration file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(data)
}

// ParseYAML parses a YAML configuration document
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return &cfg, nil
}

// Resolver builds a Config from layered sources. For every setting the first
// non-empty value wins, in this order:
//
//  1. Overrides (command line flags)
//  2. environment variables
//  3. File (optional YAML config)
//  4. built-in defaults
//  5. interactive prompt (email, password, recipient and location only)
type Resolver struct {
	Overrides Config
	LookupEnv func(key string) (string, bool)
	File      *Config
	Prompter  Prompter
}

// NewResolver returns a resolver reading the process environment and
// prompting on the terminal
func NewResolver() *Resolver {
	return &Resolver{
		LookupEnv: os.LookupEnv,
		Prompter:  NewTerminalPrompter(),
	}
}

func (r *Resolver) env(key string) string {
	if r.LookupEnv == nil {
		return ""
	}
	v, _ := r.LookupEnv(key)
	return v
}

func (r *Resolver) file() Config {
	if r.File == nil {
		return Config{}
	}
	return *r.File
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Resolve merges all layers, prompts for what is still missing and validates the result
func (r *Resolver) Resolve() (*Config, error) {
	file := r.file()
	defaults := DefaultConfig()
	cfg := &Config{}

	mode := first(string(r.Overrides.Mode), r.env(EnvMode), string(file.Mode), string(defaults.Mode))
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	cfg.Mode = m

	cfg.Email = first(r.Overrides.Email, r.env(EnvEmail), file.Email)
	cfg.Password = first(r.Overrides.Password, r.env(EnvPassword), file.Password)
	cfg.Recipient = first(r.Overrides.Recipient, r.env(EnvRecipient), file.Recipient)
	cfg.Location = first(r.Overrides.Location, r.env(EnvLocation), file.Location)
	cfg.SMTPHost = first(r.Overrides.SMTPHost, r.env(EnvSMTPHost), file.SMTPHost, defaults.SMTPHost)
	cfg.UserAgent = first(r.Overrides.UserAgent, r.env(EnvUserAgent), file.UserAgent, defaults.UserAgent)
	cfg.ChartPath = first(r.Overrides.ChartPath, r.env(EnvChartPath), file.ChartPath, defaults.ChartPath)
	cfg.LogLevel = first(r.Overrides.LogLevel, r.env(EnvLogLevel), file.LogLevel, defaults.LogLevel)

	cfg.SMTPPort = defaults.SMTPPort
	if file.SMTPPort != 0 {
		cfg.SMTPPort = file.SMTPPort
	}
	if portStr := r.env(EnvSMTPPort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.SMTPPort = port
		} else {
			logger.Warnf("%s value %q is not a number, using %d", EnvSMTPPort, portStr, cfg.SMTPPort)
		}
	}
	if r.Overrides.SMTPPort != 0 {
		cfg.SMTPPort = r.Overrides.SMTPPort
	}

	if err := r.prompt(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// prompt asks for the settings that have no default, in the order a user
// logging in expects: credentials first, then the place
func (r *Resolver) prompt(cfg *Config) error {
	type question struct {
		target *string
		label  string
		secret bool
		needed bool
	}
	questions := []question{
		{&cfg.Email, "Log in to send an email.\nEmail: ", false, cfg.Mode.SendsMail()},
		{&cfg.Password, "Password: ", true, cfg.Mode.SendsMail()},
		{&cfg.Recipient, "Recipient email: ", false, cfg.Mode.SendsMail()},
		{&cfg.Location, "Location: ", false, true},
	}

	for _, q := range questions {
		if !q.needed || *q.target != "" {
			continue
		}
		if r.Prompter == nil {
			continue // Validate reports it
		}

		var (
			answer string
			err    error
		)
		if q.secret {
			answer, err = r.Prompter.PromptSecret(q.label)
		} else {
			answer, err = r.Prompter.Prompt(q.label)
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		*q.target = answer
	}
	return nil
}
