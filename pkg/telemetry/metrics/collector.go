package metrics

import "github.com/prometheus/client_golang/prometheus"

// Validation results used as the "result" label value.
const (
	ResultAllowed   = "allowed"
	ResultViolation = "violation"
)

// Config contains configuration for the metrics collector.
type Config struct {
	// Enabled enables metric recording. When false, all record calls are
	// no-ops.
	Enabled bool

	// Namespace is the Prometheus namespace prefix.
	// Default: "pathwarden"
	Namespace string
}

// DefaultConfig returns the default metrics configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:   true,
		Namespace: "pathwarden",
	}
}

// Collector records validation metrics into a Prometheus registry.
type Collector struct {
	config   *Config
	registry *prometheus.Registry

	validations *prometheus.CounterVec
	violations  *prometheus.CounterVec
	lookups     *prometheus.CounterVec
	schemas     *prometheus.GaugeVec
}

// NewCollector creates a collector bound to the given Prometheus registry.
// If registry is nil, a new private registry is created.
func NewCollector(cfg *Config, registry *prometheus.Registry) *Collector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "pathwarden"
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "validations_total",
			Help:      "Schema validations by operation and result.",
		}, []string{"operation", "result"}),

		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "violations_total",
			Help:      "Schema violations by reason.",
		}, []string{"reason"}),

		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "lookups_total",
			Help:      "Schema lookups by match kind (exact, pattern, default).",
		}, []string{"match"}),

		schemas: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "schemas",
			Help:      "Registered schemas by kind (exact, pattern).",
		}, []string{"kind"}),
	}

	registry.MustRegister(c.validations, c.violations, c.lookups, c.schemas)

	return c
}

// RecordValidation records the outcome of a validation call.
func (c *Collector) RecordValidation(operation, result string) {
	if !c.config.Enabled {
		return
	}
	c.validations.WithLabelValues(operation, result).Inc()
}

// RecordViolation records a violation by reason.
func (c *Collector) RecordViolation(reason string) {
	if !c.config.Enabled {
		return
	}
	c.violations.WithLabelValues(reason).Inc()
}

// RecordLookup records how a schema lookup resolved.
func (c *Collector) RecordLookup(match string) {
	if !c.config.Enabled {
		return
	}
	c.lookups.WithLabelValues(match).Inc()
}

// SetSchemaCount updates the registered-schema gauge for a kind.
func (c *Collector) SetSchemaCount(kind string, count int) {
	if !c.config.Enabled {
		return
	}
	c.schemas.WithLabelValues(kind).Set(float64(count))
}
