package config

import "time"

// Config is the top-level pathwarden configuration.
type Config struct {
	Schemas SchemasConfig `yaml:"schemas"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// SchemasConfig configures schema-set loading and hot reload.
type SchemasConfig struct {
	// Path is the schema-set document or directory of documents.
	Path string `yaml:"path"`

	// DebounceInterval is the quiet period after the last file event
	// before a reload runs.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// MaxFileSize is the largest accepted document size in bytes.
	MaxFileSize int64 `yaml:"max_file_size"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Listen    string `yaml:"listen"`
	Namespace string `yaml:"namespace"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the output format ("json", "text").
	Format string `yaml:"format"`
}
