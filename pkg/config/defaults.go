package config

import "time"

// Default values applied by ApplyDefaults.
const (
	DefaultDebounceInterval = 100 * time.Millisecond
	DefaultMaxFileSize      = 1 << 20
	DefaultMetricsListen    = ":9464"
	DefaultMetricsNamespace = "pathwarden"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// ApplyDefaults fills in zero-valued fields with defaults. The schema path
// has no default; it is required and enforced by Validate.
func ApplyDefaults(cfg *Config) {
	if cfg.Schemas.DebounceInterval <= 0 {
		cfg.Schemas.DebounceInterval = DefaultDebounceInterval
	}
	if cfg.Schemas.MaxFileSize <= 0 {
		cfg.Schemas.MaxFileSize = DefaultMaxFileSize
	}

	if cfg.Metrics.Listen == "" {
		cfg.Metrics.Listen = DefaultMetricsListen
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}
