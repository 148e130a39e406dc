// Package metrics provides Prometheus metrics for schema validation.
//
// The Collector records three things: how lookups resolve (exact, pattern,
// or default), how validations conclude (per operation, allowed or
// violation), and which violation reasons occur. A gauge tracks the size of
// the registered schema set by kind.
//
// # Basic Usage
//
//	collector := metrics.NewCollector(metrics.DefaultConfig(), nil)
//	collector.RecordValidation("create", "violation")
//	collector.RecordViolation(schema.ReasonMustBeEphemeral)
//
//	http.Handle("/metrics", collector.Handler())
//
// All metric updates are counter increments or gauge sets on pre-registered
// vectors and are safe for concurrent use.
package metrics
