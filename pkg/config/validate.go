package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json": true,
	"text": true,
}

// Validate checks the configuration for missing or contradictory values.
func Validate(cfg *Config) error {
	if cfg.Schemas.Path == "" {
		return fmt.Errorf("schemas.path: is required")
	}
	if cfg.Schemas.DebounceInterval <= 0 {
		return fmt.Errorf("schemas.debounce_interval: must be positive")
	}
	if cfg.Schemas.MaxFileSize <= 0 {
		return fmt.Errorf("schemas.max_file_size: must be positive")
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Listen == "" {
		return fmt.Errorf("metrics.listen: is required when metrics are enabled")
	}

	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level: invalid level %q", cfg.Logging.Level)
	}
	if !validLogFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format: invalid format %q", cfg.Logging.Format)
	}

	return nil
}
