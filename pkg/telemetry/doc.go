// Package telemetry groups the observability subsystems: Prometheus metrics
// (telemetry/metrics) and structured logging (telemetry/logging).
//
// Validation is a hot path measured in microseconds, so both subsystems are
// designed to stay out of the way: metric updates are pre-registered counter
// increments and logging is plain log/slog with component-scoped loggers.
package telemetry
