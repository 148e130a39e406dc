package guard

import (
	"context"
	"errors"
	"log/slog"

	"warden-hq/pathwarden/pkg/audit"
	"warden-hq/pathwarden/pkg/registry"
	"warden-hq/pathwarden/pkg/schema"
	"warden-hq/pathwarden/pkg/telemetry/metrics"
)

// Operation names used in metrics labels and audit records.
const (
	OpCreate  = "create"
	OpDelete  = "delete"
	OpWatch   = "watch"
	OpSetData = "set_data"
)

// Guard validates intended namespace operations against registered schemas.
type Guard struct {
	registry *registry.Registry
	metrics  *metrics.Collector
	recorder *audit.Recorder
	logger   *slog.Logger
}

// New creates a guard over the given registry. The metrics collector and
// audit recorder are optional; pass nil to disable either. A nil logger
// defaults to slog.Default().
func New(reg *registry.Registry, collector *metrics.Collector, recorder *audit.Recorder, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}

	return &Guard{
		registry: reg,
		metrics:  collector,
		recorder: recorder,
		logger:   logger.With("component", "guard"),
	}
}

// Registry returns the guard's schema registry.
func (g *Guard) Registry() *registry.Registry {
	return g.registry
}

// CheckCreate validates an intended node creation.
func (g *Guard) CheckCreate(ctx context.Context, path string, isEphemeral, isSequential bool, data []byte) error {
	s := g.lookup(path)
	return g.conclude(OpCreate, path, s.ValidateCreate(isEphemeral, isSequential, data))
}

// CheckDelete validates an intended node deletion.
func (g *Guard) CheckDelete(ctx context.Context, path string) error {
	s := g.lookup(path)
	return g.conclude(OpDelete, path, s.ValidateDeletion())
}

// CheckWatch validates an intended watch state change.
func (g *Guard) CheckWatch(ctx context.Context, path string, isWatching bool) error {
	s := g.lookup(path)
	return g.conclude(OpWatch, path, s.ValidateWatcher(isWatching))
}

// CheckSetData validates an intended node content update.
func (g *Guard) CheckSetData(ctx context.Context, path string, data []byte) error {
	s := g.lookup(path)
	return g.conclude(OpSetData, path, s.ValidateData(data))
}

func (g *Guard) lookup(path string) *schema.Schema {
	s, match := g.registry.LookupWithMatch(path)
	if g.metrics != nil {
		g.metrics.RecordLookup(match.String())
	}
	return s
}

func (g *Guard) conclude(operation, path string, err error) error {
	if err == nil {
		if g.metrics != nil {
			g.metrics.RecordValidation(operation, metrics.ResultAllowed)
		}
		return nil
	}

	if g.metrics != nil {
		g.metrics.RecordValidation(operation, metrics.ResultViolation)
	}

	var v *schema.Violation
	if errors.As(err, &v) {
		if g.metrics != nil {
			g.metrics.RecordViolation(v.Reason)
		}
		if g.recorder != nil {
			g.recorder.Record(audit.NewRecord(path, v.Schema.RawPath(), operation, v.Reason))
		}

		g.logger.Warn("schema violation",
			"operation", operation,
			"path", path,
			"schema", v.Schema.RawPath(),
			"reason", v.Reason,
		)
	}

	return err
}
