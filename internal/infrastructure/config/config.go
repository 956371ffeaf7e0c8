// Package config provides configuration management for the CLI.
// Configuration is layered, highest precedence first:
//  1. Environment variables (prefix GEO, e.g. GEO_LOG_LEVEL)
//  2. Config file (config.yaml in ., ./configs or /etc/geoshapes, or an explicit path)
//  3. Default values
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Log contains logger configuration
	Log LogConfig `mapstructure:"log"`

	// Display controls how reports are rendered
	Display DisplayConfig `mapstructure:"display"`

	// Demo describes the sample set used by the demo command
	Demo DemoConfig `mapstructure:"demo"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (development, production)
	Environment string `mapstructure:"environment"`
}

// LogConfig contains logger configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log encoding (json, console)
	Format string `mapstructure:"format"`
}

// DisplayConfig controls report rendering.
type DisplayConfig struct {
	// Compact renders large metrics with K/M suffixes
	Compact bool `mapstructure:"compact"`

	// RowLines draws a separator between table rows
	RowLines bool `mapstructure:"row_lines"`
}

// DemoConfig describes the demo sample set.
type DemoConfig struct {
	// Unit is the target unit of the conversion round trip
	Unit string `mapstructure:"unit"`

	// Shapes overrides the built-in sample set when non-empty
	Shapes []ShapeConfig `mapstructure:"shapes"`
}

// ShapeConfig describes one shape in a config file.
//
//	demo:
//	  shapes:
//	    - kind: rectangle
//	      dimensions: [10, 5]
//	      unit: cm
type ShapeConfig struct {
	Kind       string    `mapstructure:"kind"`
	Dimensions []float64 `mapstructure:"dimensions"`
	Unit       string    `mapstructure:"unit"`
}

// Load loads the configuration from environment variables and config files.
//
// Parameters:
//   - path: explicit config file; empty searches the default locations
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/geoshapes")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file is only OK when searching the default locations
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("GEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "geoshapes")
	v.SetDefault("app.environment", "production")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetDefault("display.compact", false)
	v.SetDefault("display.row_lines", true)

	v.SetDefault("demo.unit", "m")
	v.SetDefault("demo.shapes", []ShapeConfig{})
}

// MustLoad loads the configuration and panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
