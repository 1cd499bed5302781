package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the render command
type Config struct {
	// Helper configuration
	Indentation string `env:"HELPERS_INDENTATION" envDefault:"  "`

	// Input and output files
	TemplateFile string `env:"TEMPLATE_FILE"`
	DataFile     string `env:"DATA_FILE"`
	OutputFile   string `env:"OUTPUT_FILE"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.TemplateFile == "" {
		return fmt.Errorf("TEMPLATE_FILE is required")
	}

	if c.OutputFile != "" && c.OutputFile == c.TemplateFile {
		return fmt.Errorf("OUTPUT_FILE must differ from TEMPLATE_FILE")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// HelperOptions returns the options handed to the helper provider
func (c *Config) HelperOptions() map[string]interface{} {
	return map[string]interface{}{
		"indentation": c.Indentation,
	}
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Indentation=%q, TemplateFile=%s, DataFile=%s, OutputFile=%s, LogLevel=%s}",
		c.Indentation,
		c.TemplateFile,
		c.DataFile,
		c.OutputFile,
		c.LogLevel,
	)
}
