package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is a single persisted schema violation.
type Record struct {
	// ID is the unique record identifier (UUID).
	ID string

	// Time is when the violation occurred.
	Time time.Time

	// Path is the node path the client attempted to operate on.
	Path string

	// SchemaPath is the raw path of the violated schema (exact path or
	// pattern source).
	SchemaPath string

	// Operation is the attempted operation ("create", "delete", "watch",
	// "set_data").
	Operation string

	// Reason is the violation reason, one of the schema.Reason* constants.
	Reason string
}

// NewRecord creates a Record with a fresh UUID and the current time.
func NewRecord(path, schemaPath, operation, reason string) *Record {
	return &Record{
		ID:         uuid.NewString(),
		Time:       time.Now().UTC(),
		Path:       path,
		SchemaPath: schemaPath,
		Operation:  operation,
		Reason:     reason,
	}
}

// Query selects records from storage. Zero-valued fields are ignored.
type Query struct {
	// Start bounds the time range from below (inclusive).
	Start time.Time

	// End bounds the time range from above (exclusive).
	End time.Time

	// Path filters by the exact node path.
	Path string

	// Reason filters by violation reason.
	Reason string

	// Limit caps the number of returned records. Zero means no limit.
	Limit int
}

// Storage is the persistence interface for audit records. Implementations
// must be safe for concurrent use. Query results are ordered newest first.
type Storage interface {
	// Store persists a record.
	Store(ctx context.Context, record *Record) error

	// Query returns records matching the query, newest first.
	Query(ctx context.Context, query *Query) ([]*Record, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int64, error)

	// DeleteBefore removes records older than the cutoff and returns how
	// many were removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Close releases storage resources.
	Close() error
}
