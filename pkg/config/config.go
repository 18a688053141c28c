// Package config holds process configuration for bookline. Credentials are
// read once at startup into an explicit Config struct that is passed to the
// components needing it; business logic never reads the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries every external setting the reservation engine needs.
type Config struct {
	// BrowserbaseAPIKey authenticates against the automation provider.
	// Required for every attempt.
	BrowserbaseAPIKey string

	// BrowserbaseProjectID scopes provider sessions. Required.
	BrowserbaseProjectID string

	// ExaAPIKey authenticates web search. Optional; without it the search
	// call fails and attempts end in a system fault.
	ExaAPIKey string

	// ReplayBaseURL is the provider domain used to build session replay
	// references.
	ReplayBaseURL string

	// AttemptTimeout bounds one whole booking attempt. Zero disables the
	// overall deadline.
	AttemptTimeout time.Duration

	// ScreenshotPath, when set, stores a best-effort capture of the booking
	// page after load.
	ScreenshotPath string
}

// fileConfig is the on-disk YAML shape. Durations are strings in Go
// duration syntax ("90s", "3m").
type fileConfig struct {
	BrowserbaseAPIKey    string `yaml:"browserbase_api_key"`
	BrowserbaseProjectID string `yaml:"browserbase_project_id"`
	ExaAPIKey            string `yaml:"exa_api_key"`
	ReplayBaseURL        string `yaml:"replay_base_url"`
	AttemptTimeout       string `yaml:"attempt_timeout"`
	ScreenshotPath       string `yaml:"screenshot_path"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		ReplayBaseURL:  "https://www.browserbase.com",
		AttemptTimeout: 180 * time.Second,
	}
}

// FromEnv builds a Config from defaults overlaid with environment
// variables.
func FromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

// Load reads a YAML config file, then overlays environment variables on
// top so deployment secrets can stay out of the file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.BrowserbaseAPIKey != "" {
		cfg.BrowserbaseAPIKey = fc.BrowserbaseAPIKey
	}
	if fc.BrowserbaseProjectID != "" {
		cfg.BrowserbaseProjectID = fc.BrowserbaseProjectID
	}
	if fc.ExaAPIKey != "" {
		cfg.ExaAPIKey = fc.ExaAPIKey
	}
	if fc.ReplayBaseURL != "" {
		cfg.ReplayBaseURL = fc.ReplayBaseURL
	}
	if fc.ScreenshotPath != "" {
		cfg.ScreenshotPath = fc.ScreenshotPath
	}
	if fc.AttemptTimeout != "" {
		d, err := time.ParseDuration(fc.AttemptTimeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid attempt_timeout: %w", err)
		}
		cfg.AttemptTimeout = d
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := env("BROWSERBASE_API_KEY"); v != "" {
		c.BrowserbaseAPIKey = v
	}
	if v := env("BROWSERBASE_PROJECT_ID"); v != "" {
		c.BrowserbaseProjectID = v
	}
	if v := env("EXA_API_KEY"); v != "" {
		c.ExaAPIKey = v
	}
	if v := env("BOOKLINE_REPLAY_BASE_URL"); v != "" {
		c.ReplayBaseURL = v
	}
	if v := env("BOOKLINE_ATTEMPT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.AttemptTimeout = d
		}
	}
}

// Validate checks the required automation-provider credentials. A missing
// search key is not an error here; it surfaces per attempt.
func (c Config) Validate() error {
	if c.BrowserbaseAPIKey == "" {
		return fmt.Errorf("BROWSERBASE_API_KEY is required")
	}
	if c.BrowserbaseProjectID == "" {
		return fmt.Errorf("BROWSERBASE_PROJECT_ID is required")
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
