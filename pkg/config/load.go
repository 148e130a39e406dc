package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies defaults, and
// validates. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Variables follow the naming convention
// PATHWARDEN_SECTION_FIELD (e.g. PATHWARDEN_SCHEMAS_PATH) and always take
// precedence over file values.
//
// The loading sequence is:
//  1. Load YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate the final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("PATHWARDEN_SCHEMAS_PATH"); val != "" {
		cfg.Schemas.Path = val
	}
	if val := os.Getenv("PATHWARDEN_SCHEMAS_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Schemas.DebounceInterval = d
		}
	}
	if val := os.Getenv("PATHWARDEN_SCHEMAS_MAX_FILE_SIZE"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Schemas.MaxFileSize = i
		}
	}

	if val := os.Getenv("PATHWARDEN_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("PATHWARDEN_METRICS_LISTEN"); val != "" {
		cfg.Metrics.Listen = val
	}
	if val := os.Getenv("PATHWARDEN_METRICS_NAMESPACE"); val != "" {
		cfg.Metrics.Namespace = val
	}

	if val := os.Getenv("PATHWARDEN_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("PATHWARDEN_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
}
