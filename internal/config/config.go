// Package config provides configuration management for the portfolio tracker.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"stocko/internal/store"
)

// Config holds all application configuration.
type Config struct {
	Data        DataConfig   `mapstructure:"data"`
	Quotes      QuotesConfig `mapstructure:"quotes"`
	UI          UIConfig     `mapstructure:"ui"`
	Credentials Credentials  `mapstructure:"-"` // Loaded separately
}

// DataConfig holds persistence configuration.
type DataConfig struct {
	// File is the JSON data file holding the portfolio, watch list, and
	// archive. Defaults to stocko_data.json next to the executable.
	File string `mapstructure:"file"`
	// Journal enables the SQLite order journal and quote cache.
	Journal bool `mapstructure:"journal"`
}

// QuotesConfig holds market-data provider configuration.
type QuotesConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Cache reuses same-day closes from the journal instead of
	// refetching on every listing.
	Cache bool `mapstructure:"cache"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// Credentials holds API credentials.
type Credentials struct {
	AlphaVantage AlphaVantageCredentials `mapstructure:"alphavantage"`
}

// AlphaVantageCredentials holds the Alpha Vantage API key.
type AlphaVantageCredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/stocko"
	}
	return filepath.Join(home, ".config", "stocko")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if cfg.Data.File == "" {
		cfg.Data.File = store.DefaultDataPath()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("data.journal", true)
	v.SetDefault("quotes.cache", true)
	v.SetDefault("ui.color_enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// First run: write a template and continue with defaults.
			if err := createTemplateConfig(configDir); err != nil {
				return err
			}
			return v.Unmarshal(target)
		}
		return err
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createTemplateCredentials(configDir)
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.Credentials.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("STOCKO_DATA_FILE"); v != "" {
		cfg.Data.File = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Quotes.Cache && !c.Data.Journal {
		return fmt.Errorf("quotes.cache requires data.journal")
	}
	return nil
}

// JournalPath returns the SQLite journal path inside the config directory.
func JournalPath() string {
	return filepath.Join(DefaultConfigDir(), "stocko.db")
}
