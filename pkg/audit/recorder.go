package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// RecorderConfig contains configuration for the asynchronous recorder.
type RecorderConfig struct {
	// Enabled enables recording. When false, Record is a no-op.
	Enabled bool

	// Buffer is the size of the async write channel.
	// Default: 1000
	Buffer int

	// WriteTimeout bounds each storage write.
	// Default: 5 seconds
	WriteTimeout time.Duration
}

// DefaultRecorderConfig returns the default recorder configuration.
func DefaultRecorderConfig() *RecorderConfig {
	return &RecorderConfig{
		Enabled:      true,
		Buffer:       1000,
		WriteTimeout: 5 * time.Second,
	}
}

// Recorder writes audit records to storage asynchronously so callers on the
// validation path never block. Records are dropped (and counted) when the
// buffer is full.
type Recorder struct {
	storage Storage
	config  *RecorderConfig
	records chan *Record
	wg      sync.WaitGroup
	dropped atomic.Int64
	logger  *slog.Logger

	// mu orders Record sends against the channel close in Close.
	mu     sync.RWMutex
	closed bool
}

// NewRecorder creates a recorder and starts its write worker.
func NewRecorder(storage Storage, config *RecorderConfig) *Recorder {
	if config == nil {
		config = DefaultRecorderConfig()
	}
	if config.Buffer <= 0 {
		config.Buffer = 1000
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 5 * time.Second
	}

	r := &Recorder{
		storage: storage,
		config:  config,
		records: make(chan *Record, config.Buffer),
		logger:  slog.Default().With("component", "audit.recorder"),
	}

	r.wg.Add(1)
	go r.run()

	return r
}

// Record enqueues a record for persistence. It never blocks; when the buffer
// is full the record is dropped and the drop counter incremented.
func (r *Recorder) Record(record *Record) {
	if !r.config.Enabled || record == nil {
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return
	}

	select {
	case r.records <- record:
	default:
		dropped := r.dropped.Add(1)
		if dropped == 1 || dropped%100 == 0 {
			r.logger.Warn("audit buffer full, dropping records",
				"dropped_total", dropped,
			)
		}
	}
}

// Dropped returns the number of records dropped due to a full buffer.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close stops the recorder and flushes buffered records to storage. The
// underlying storage is not closed.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.records)
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}

func (r *Recorder) run() {
	defer r.wg.Done()

	for record := range r.records {
		r.write(record)
	}
}

func (r *Recorder) write(record *Record) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	if err := r.storage.Store(ctx, record); err != nil {
		r.logger.Error("failed to store audit record",
			"id", record.ID,
			"path", record.Path,
			"error", err,
		)
	}
}
