package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Environment variables read by Load
const (
	EnvConfigPath = "SDRPARAMS_CONFIG"
	EnvLogLevel   = "SDRPARAMS_LOG_LEVEL"
	EnvLogFormat  = "SDRPARAMS_LOG_FORMAT"
	EnvLogFile    = "SDRPARAMS_LOG_FILE"
)

// Config represents the complete configuration for the parameter tool
type Config struct {
	Logging    LoggingConfig          `yaml:"logging" toml:"logging"`
	Parameters map[string]interface{} `yaml:"parameters" toml:"parameters"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level      string `yaml:"level" toml:"level"`
	Format     string `yaml:"format" toml:"format"`
	File       string `yaml:"file" toml:"file"` // empty means stderr
	MaxSizeMB  int    `yaml:"maxSizeMb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"maxBackups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"maxAgeDays" toml:"max_age_days"`
}

// Load builds the configuration: defaults, then the file at path (or the one
// named by SDRPARAMS_CONFIG when path is empty), then environment overrides.
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := getDefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Parameters: map[string]interface{}{},
	}
}

// loadFromFile decodes filename over cfg, as TOML for a .toml extension and as
// YAML otherwise
func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", filename, err)
	}

	if cfg.Parameters == nil {
		cfg.Parameters = map[string]interface{}{}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.Logging.Format = format
	}
	if file := os.Getenv(EnvLogFile); file != "" {
		cfg.Logging.File = file
	}
}

var (
	validLevels  = []string{"trace", "debug", "info", "warning", "error", "fatal"}
	validFormats = []string{"text", "json"}
)

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "warn" {
		cfg.Logging.Level = "warning"
	}
	if !contains(validLevels, cfg.Logging.Level) {
		return fmt.Errorf("invalid log level %s, must be one of: %v", cfg.Logging.Level, validLevels)
	}

	if !contains(validFormats, cfg.Logging.Format) {
		return fmt.Errorf("invalid log format %s, must be one of: %v", cfg.Logging.Format, validFormats)
	}

	if cfg.Logging.MaxSizeMB < 0 || cfg.Logging.MaxBackups < 0 || cfg.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative: size=%d backups=%d age=%d",
			cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays)
	}

	for key, value := range cfg.Parameters {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("parameter with empty key")
		}
		switch value.(type) {
		case string, bool, int, int64, uint64, float64:
		default:
			return fmt.Errorf("parameter %s has unsupported value %v (%T)", key, value, value)
		}
	}

	return nil
}

// contains checks if a string slice contains a specific string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
