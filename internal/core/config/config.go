// Package config handles configuration loading and validation for barber.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/barber/internal/core/toast"
)

// Config holds the application configuration.
type Config struct {
	API     APIConfig   `yaml:"api"`
	Toast   ToastConfig `yaml:"toast"`
	TUI     TUIConfig   `yaml:"tui"`
	Debug   DebugConfig `yaml:"debug"`
	DataDir string      `yaml:"-"` // set by caller, not from config file
}

// APIConfig points the client at the remote account API.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"BARBER_API_URL"`
	Timeout time.Duration `yaml:"timeout" env:"BARBER_API_TIMEOUT"`
}

// ToastConfig controls notification lifetimes.
type ToastConfig struct {
	Duration     time.Duration `yaml:"duration" env:"BARBER_TOAST_DURATION"`
	StickyErrors bool          `yaml:"sticky_errors" env:"BARBER_TOAST_STICKY_ERRORS"`
	MaxToasts    int           `yaml:"max_toasts" env:"BARBER_TOAST_MAX"`
}

// Policy converts the toast section into a registry policy.
func (t ToastConfig) Policy() toast.Policy {
	return toast.Policy{
		Duration:     t.Duration,
		StickyErrors: t.StickyErrors,
		MaxToasts:    t.MaxToasts,
	}
}

// TUIConfig holds interactive UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme" env:"BARBER_THEME"`
}

// DebugConfig holds the optional debug HTTP endpoint settings.
type DebugConfig struct {
	// MetricsPort serves /metrics and pprof when positive.
	MetricsPort int `yaml:"metrics_port" env:"BARBER_METRICS_PORT"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:3333",
			Timeout: 10 * time.Second,
		},
		Toast: ToastConfig{
			Duration: toast.DefaultDuration,
		},
		TUI: TUIConfig{
			Theme: "tokyo-night",
		},
	}
}

// LoadDotEnv loads .env style files into the process environment. Missing
// files are skipped; with no paths it tries ./.env.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from the given path, applies BARBER_* environment
// overrides and sets the data directory. If configPath is empty or doesn't
// exist, defaults are used.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// A zero toast duration is kept: it disables auto-expiry.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}
