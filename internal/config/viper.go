// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/aggregation"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FINTRACK_STORE_BACKEND.
const EnvPrefix = "FINTRACK"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Store struct {
		Backend       string `mapstructure:"backend" yaml:"backend"`
		Path          string `mapstructure:"path" yaml:"path"`
		Format        string `mapstructure:"format" yaml:"format"`
		Key           string `mapstructure:"key" yaml:"key"`
		BackupEnabled bool   `mapstructure:"backup_enabled" yaml:"backup_enabled"`
	} `mapstructure:"store" yaml:"store"`

	View struct {
		PageSize         int    `mapstructure:"page_size" yaml:"page_size"`
		RecentLimit      int    `mapstructure:"recent_limit" yaml:"recent_limit"`
		DefaultTimeframe string `mapstructure:"default_timeframe" yaml:"default_timeframe"`
		CurrencySymbol   string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	} `mapstructure:"view" yaml:"view"`

	Palette struct {
		Seed uint64 `mapstructure:"seed" yaml:"seed"`
	} `mapstructure:"palette" yaml:"palette"`
}

// InitializeConfig loads configuration from defaults, the first config.yaml
// found in $HOME/.fintrack, ./.fintrack or ., and FINTRACK_* variables.
func InitializeConfig() (*Config, error) {
	return Load("")
}

// Load is InitializeConfig with an explicit config file. An empty
// configFile searches the default locations; a missing default file is not
// an error, a missing explicit file is.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.fintrack")
		v.AddConfigPath(".fintrack")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Defaults returns the built-in configuration without reading any file or
// environment variable.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// defaults always decode
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("store.backend", string(store.BackendFile))
	v.SetDefault("store.path", "")
	v.SetDefault("store.format", string(store.FormatJSON))
	v.SetDefault("store.key", store.DefaultKey)
	v.SetDefault("store.backup_enabled", true)

	v.SetDefault("view.page_size", 10)
	v.SetDefault("view.recent_limit", 5)
	v.SetDefault("view.default_timeframe", string(aggregation.Month))
	v.SetDefault("view.currency_symbol", "$")

	v.SetDefault("palette.seed", 1)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if _, err := store.ParseBackend(config.Store.Backend); err != nil {
		return err
	}

	if _, err := store.ParseFormat(config.Store.Format); err != nil {
		return err
	}

	if strings.TrimSpace(config.Store.Key) == "" {
		return fmt.Errorf("store.key cannot be empty")
	}

	if config.View.PageSize < 1 || config.View.PageSize > 500 {
		return fmt.Errorf("view.page_size must be between 1 and 500, got: %d", config.View.PageSize)
	}

	if config.View.RecentLimit < 1 {
		return fmt.Errorf("view.recent_limit must be positive, got: %d", config.View.RecentLimit)
	}

	if _, err := aggregation.ParseTimeframe(config.View.DefaultTimeframe); err != nil {
		return fmt.Errorf("view.default_timeframe: %w", err)
	}

	return nil
}

// StoreOptions converts the store section for store.Open.
func (c *Config) StoreOptions() store.Options {
	backend, err := store.ParseBackend(c.Store.Backend)
	if err != nil {
		// unvalidated configs surface the bad name from store.Open
		backend = store.Backend(c.Store.Backend)
	}
	format, _ := store.ParseFormat(c.Store.Format)
	return store.Options{
		Backend: backend,
		Path:    c.Store.Path,
		Format:  format,
		Key:     c.Store.Key,
		Backup:  c.Store.BackupEnabled,
	}
}

// DefaultTimeframe returns the parsed view.default_timeframe.
func (c *Config) DefaultTimeframe() aggregation.Timeframe {
	tf, err := aggregation.ParseTimeframe(c.View.DefaultTimeframe)
	if err != nil {
		return aggregation.Month
	}
	return tf
}

// ConfigureLoggingFromConfig builds the application logger from the log section.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
