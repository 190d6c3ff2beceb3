// Package config handles reading and writing .wishkiosk/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .wishkiosk/config.yaml.
// Reads start from DefaultConfig, so a field the file omits keeps its
// default while an explicit zero is kept as written. Environment variables
// override file values.
type Config struct {
	Version   int             `yaml:"version"`
	Campaign  CampaignConfig  `yaml:"campaign"`
	Session   SessionConfig   `yaml:"session"`
	Generator GeneratorConfig `yaml:"generator"`
	Sink      SinkConfig      `yaml:"sink"`
	Snow      SnowConfig      `yaml:"snow"`
	Log       LogConfig       `yaml:"log"`
	Archive   ArchiveConfig   `yaml:"archive"`
}

// CampaignConfig holds the copy and donation figures shown on screen.
type CampaignConfig struct {
	Title           string `yaml:"title"             env:"WISHKIOSK_CAMPAIGN_TITLE"`
	Subtitle        string `yaml:"subtitle"          env:"WISHKIOSK_CAMPAIGN_SUBTITLE"`
	Sponsor         string `yaml:"sponsor"           env:"WISHKIOSK_SPONSOR"`
	DonationPerWish int64  `yaml:"donation_per_wish" env:"WISHKIOSK_DONATION_PER_WISH"`
	StartingTotal   int64  `yaml:"starting_total"    env:"WISHKIOSK_STARTING_TOTAL"`
	StartingCount   int    `yaml:"starting_count"    env:"WISHKIOSK_STARTING_COUNT"`
	Locale          string `yaml:"locale"            env:"WISHKIOSK_LOCALE"`
	Currency        string `yaml:"currency"          env:"WISHKIOSK_CURRENCY"`
	CurrencySymbol  string `yaml:"currency_symbol"   env:"WISHKIOSK_CURRENCY_SYMBOL"`
}

// SessionConfig controls screen timing.
type SessionConfig struct {
	IdleTimeout   time.Duration `yaml:"idle_timeout"   env:"WISHKIOSK_IDLE_TIMEOUT"`
	MinProcessing time.Duration `yaml:"min_processing" env:"WISHKIOSK_MIN_PROCESSING"`
}

// GeneratorConfig controls the thank-you message model.
type GeneratorConfig struct {
	Model       string        `yaml:"model"       env:"WISHKIOSK_GENERATOR_MODEL"`
	APIKey      string        `yaml:"api_key"     env:"GEMINI_API_KEY"`
	Temperature float32       `yaml:"temperature" env:"WISHKIOSK_TEMPERATURE"`
	Timeout     time.Duration `yaml:"timeout"     env:"WISHKIOSK_GENERATOR_TIMEOUT"`
}

// SinkConfig controls wish delivery to the spreadsheet webhook.
type SinkConfig struct {
	URL       string        `yaml:"url"        env:"WISHKIOSK_SINK_URL"`
	Timeout   time.Duration `yaml:"timeout"    env:"WISHKIOSK_SINK_TIMEOUT"`
	DemoDelay time.Duration `yaml:"demo_delay" env:"WISHKIOSK_SINK_DEMO_DELAY"`
}

// SnowConfig controls the decorative snowfall band.
type SnowConfig struct {
	Flakes int `yaml:"flakes" env:"WISHKIOSK_SNOW_FLAKES"`
	Rows   int `yaml:"rows"   env:"WISHKIOSK_SNOW_ROWS"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WISHKIOSK_LOG_LEVEL"`
	Format string `yaml:"format" env:"WISHKIOSK_LOG_FORMAT"`
}

// ArchiveConfig controls how long archived logs are kept.
type ArchiveConfig struct {
	MaxAgeDays int `yaml:"max_age_days" env:"WISHKIOSK_ARCHIVE_MAX_AGE_DAYS"`
}

// Dir is the kiosk state directory relative to the working directory.
const Dir = ".wishkiosk"

const configFile = "config.yaml"

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, Dir, configFile)
}

// ReadConfig reads .wishkiosk/config.yaml from the given directory and
// applies environment overrides. A missing file yields the defaults plus
// environment overrides.
func ReadConfig(dir string) (*Config, error) {
	path := Path(dir)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("reading config env: %w", err)
		}
		return cfg, cfg.Validate()
	}
	return Load(path)
}

// Load reads an explicit config file path and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes cfg to .wishkiosk/config.yaml in the given directory.
// Creates the .wishkiosk/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, Dir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	// The file may carry an API key.
	if err := os.WriteFile(Path(dir), data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate rejects settings the kiosk cannot run with.
func (c *Config) Validate() error {
	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("session.idle_timeout must be positive, got %s", c.Session.IdleTimeout)
	}
	if c.Session.MinProcessing < 0 {
		return fmt.Errorf("session.min_processing must not be negative, got %s", c.Session.MinProcessing)
	}
	if c.Campaign.DonationPerWish <= 0 {
		return fmt.Errorf("campaign.donation_per_wish must be positive, got %d", c.Campaign.DonationPerWish)
	}
	if _, err := currency.ParseISO(c.Campaign.Currency); err != nil {
		return fmt.Errorf("campaign.currency %q: %w", c.Campaign.Currency, err)
	}
	if c.Archive.MaxAgeDays < 0 {
		return fmt.Errorf("archive.max_age_days must not be negative, got %d", c.Archive.MaxAgeDays)
	}
	if c.Snow.Flakes < 0 {
		return fmt.Errorf("snow.flakes must not be negative, got %d", c.Snow.Flakes)
	}
	return nil
}

// DefaultConfig returns a Config populated with the kiosk defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Campaign: CampaignConfig{
			Title:           "Wish for the Nation",
			Subtitle:        "Christmas Relief Drive 2025",
			Sponsor:         "Commercial Bank",
			DonationPerWish: 1000,
			StartingTotal:   5240000,
			StartingCount:   5240,
			Locale:          "en-LK",
			Currency:        "LKR",
			CurrencySymbol:  "Rs.",
		},
		Session: SessionConfig{
			IdleTimeout:   60 * time.Second,
			MinProcessing: 2 * time.Second,
		},
		Generator: GeneratorConfig{
			Model:       "googleai/gemini-2.5-flash",
			Temperature: 0.7,
			Timeout:     20 * time.Second,
		},
		Sink: SinkConfig{
			URL:       "https://script.google.com/macros/s/PLACEHOLDER/exec",
			Timeout:   10 * time.Second,
			DemoDelay: 1500 * time.Millisecond,
		},
		Snow: SnowConfig{
			Flakes: 12,
			Rows:   4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Archive: ArchiveConfig{
			MaxAgeDays: 30,
		},
	}
}
