// Package config: Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"input" yaml:"input"`

	Output struct {
		Path     string `mapstructure:"path" yaml:"path"`
		MaxLines int    `mapstructure:"max_lines" yaml:"max_lines"`
	} `mapstructure:"output" yaml:"output"`

	Convert struct {
		ExpenseOnly bool `mapstructure:"expense_only" yaml:"expense_only"`
	} `mapstructure:"convert" yaml:"convert"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then SUICA_*
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.suica-csv")
	v.AddConfigPath(".suica-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SUICA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
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

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("input.path", "./load.txt")

	v.SetDefault("output.path", "./save.csv")
	v.SetDefault("output.max_lines", 100)

	v.SetDefault("convert.expense_only", false)
}

// validateConfig checks the loaded configuration for values the
// pipeline cannot work with.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("unknown log level %q", config.Log.Level)
	}
	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", config.Log.Format)
	}
	if config.Output.MaxLines < 2 {
		return fmt.Errorf("output.max_lines must leave room for data below the header, got %d", config.Output.MaxLines)
	}
	return nil
}

// ConfigureLoggingFromConfig applies the log section of a Config to
// the global logger and returns it.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	level, err := logrus.ParseLevel(config.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if config.Log.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return Logger
}
