package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"warden-hq/pathwarden/pkg/audit"
)

// Memory implements audit.Storage with an in-memory slice. It is intended
// for tests.
type Memory struct {
	mu      sync.RWMutex
	records []*audit.Record
}

// NewMemory creates an empty in-memory storage backend.
func NewMemory() *Memory {
	return &Memory{}
}

// Store persists a copy of the record.
func (m *Memory) Store(ctx context.Context, record *audit.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *record
	m.records = append(m.records, &clone)

	return nil
}

// Query returns matching records, newest first.
func (m *Memory) Query(ctx context.Context, query *audit.Query) ([]*audit.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query == nil {
		query = &audit.Query{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*audit.Record
	for _, r := range m.records {
		if !matches(r, query) {
			continue
		}
		clone := *r
		out = append(out, &clone)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Time.After(out[j].Time)
	})

	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}

	return out, nil
}

// Count returns the number of stored records.
func (m *Memory) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.records)), nil
}

// DeleteBefore removes records older than the cutoff.
func (m *Memory) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.records[:0]
	var deleted int64
	for _, r := range m.records {
		if r.Time.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.records = kept

	return deleted, nil
}

// Close is a no-op for the memory backend.
func (m *Memory) Close() error {
	return nil
}

func matches(r *audit.Record, q *audit.Query) bool {
	if !q.Start.IsZero() && r.Time.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && !r.Time.Before(q.End) {
		return false
	}
	if q.Path != "" && r.Path != q.Path {
		return false
	}
	if q.Reason != "" && r.Reason != q.Reason {
		return false
	}
	return true
}
