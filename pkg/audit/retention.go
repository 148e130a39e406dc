package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// RetentionConfig contains configuration for audit record retention.
type RetentionConfig struct {
	// RetentionPeriod is how long records are kept.
	// Default: 30 days
	RetentionPeriod time.Duration

	// Schedule is the cron expression for pruning runs (standard 5-field
	// syntax, e.g. "0 3 * * *" for daily at 3 AM). Empty disables the
	// scheduler.
	Schedule string
}

// DefaultRetentionConfig returns the default retention configuration.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RetentionPeriod: 30 * 24 * time.Hour,
		Schedule:        "0 3 * * *",
	}
}

// Pruner deletes audit records older than the retention period.
type Pruner struct {
	storage Storage
	config  *RetentionConfig
	logger  *slog.Logger
}

// NewPruner creates a pruner over the given storage.
func NewPruner(storage Storage, config *RetentionConfig) *Pruner {
	if config == nil {
		config = DefaultRetentionConfig()
	}
	return &Pruner{
		storage: storage,
		config:  config,
		logger:  slog.Default().With("component", "audit.pruner"),
	}
}

// Prune deletes records older than the retention period and returns how
// many were removed.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-p.config.RetentionPeriod)

	deleted, err := p.storage.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("retention pruning failed: %w", err)
	}

	return deleted, nil
}

// Scheduler runs the pruner on a cron schedule.
type Scheduler struct {
	pruner  *Pruner
	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// NewScheduler creates a retention scheduler for the pruner.
func NewScheduler(pruner *Pruner) *Scheduler {
	return &Scheduler{
		pruner: pruner,
		cron:   cron.New(),
		logger: slog.Default().With("component", "audit.scheduler"),
	}
}

// Start begins scheduled pruning. If no schedule is configured the scheduler
// does nothing. The scheduler stops when the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule := s.pruner.config.Schedule
	if schedule == "" {
		s.logger.Info("prune schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}

	if _, err := s.cron.AddFunc(schedule, func() {
		s.runPruning(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule pruning: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("retention scheduler started",
		"schedule", schedule,
		"retention", s.pruner.config.RetentionPeriod,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *Scheduler) runPruning(ctx context.Context) {
	deleted, err := s.pruner.Prune(ctx)
	if err != nil {
		s.logger.Error("scheduled pruning failed", "error", err)
		return
	}

	if deleted > 0 {
		s.logger.Info("scheduled pruning completed", "deleted_count", deleted)
	} else {
		s.logger.Debug("scheduled pruning completed, no records deleted")
	}
}

// Stop stops the scheduler and waits for any running job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		<-s.cron.Stop().Done()
		s.running = false
		s.logger.Info("retention scheduler stopped")
	}
}

// IsRunning reports whether the scheduler is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}
