package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"warden-hq/pathwarden/pkg/audit"
)

// SQLiteConfig contains configuration for the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections.
	// Default: 10
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int

	// WALMode enables Write-Ahead Logging for concurrent readers and
	// writers.
	// Default: true
	WALMode bool

	// BusyTimeout is how long to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/audit.db",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLite implements audit.Storage on an embedded SQLite database.
type SQLite struct {
	db         *sql.DB
	config     *SQLiteConfig
	insertStmt *sql.Stmt
}

// NewSQLite opens (or creates) the database, applies pragmas, and bootstraps
// the schema.
func NewSQLite(config *SQLiteConfig) (*SQLite, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}
	if config.MaxOpenConns <= 0 {
		config.MaxOpenConns = 10
	}
	if config.MaxIdleConns <= 0 {
		config.MaxIdleConns = 5
	}
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = 5 * time.Second
	}

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, &audit.StorageError{Backend: "sqlite", Operation: "open", Cause: err}
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	s := &SQLite{db: db, config: config}

	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLite) init() error {
	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", s.config.BusyTimeout.Milliseconds()),
	}
	if s.config.WALMode {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}

	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return &audit.StorageError{Backend: "sqlite", Operation: "pragma", Cause: err}
		}
	}

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return &audit.StorageError{Backend: "sqlite", Operation: "bootstrap", Cause: err}
	}

	insert, err := s.db.Prepare(
		"INSERT INTO audit_records (id, ts, path, schema_path, operation, reason) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return &audit.StorageError{Backend: "sqlite", Operation: "prepare", Cause: err}
	}
	s.insertStmt = insert

	return nil
}

// Store persists a record.
func (s *SQLite) Store(ctx context.Context, record *audit.Record) error {
	_, err := s.insertStmt.ExecContext(ctx,
		record.ID,
		record.Time.UnixNano(),
		record.Path,
		record.SchemaPath,
		record.Operation,
		record.Reason,
	)
	if err != nil {
		return &audit.StorageError{Backend: "sqlite", Operation: "store", Cause: err}
	}

	return nil
}

// Query returns matching records, newest first.
func (s *SQLite) Query(ctx context.Context, query *audit.Query) ([]*audit.Record, error) {
	if query == nil {
		query = &audit.Query{}
	}

	var (
		where []string
		args  []interface{}
	)
	if !query.Start.IsZero() {
		where = append(where, "ts >= ?")
		args = append(args, query.Start.UnixNano())
	}
	if !query.End.IsZero() {
		where = append(where, "ts < ?")
		args = append(args, query.End.UnixNano())
	}
	if query.Path != "" {
		where = append(where, "path = ?")
		args = append(args, query.Path)
	}
	if query.Reason != "" {
		where = append(where, "reason = ?")
		args = append(args, query.Reason)
	}

	q := "SELECT id, ts, path, schema_path, operation, reason FROM audit_records"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY ts DESC"
	if query.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, query.Limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, &audit.StorageError{Backend: "sqlite", Operation: "query", Cause: err}
	}
	defer rows.Close()

	var out []*audit.Record
	for rows.Next() {
		var (
			r  audit.Record
			ts int64
		)
		if err := rows.Scan(&r.ID, &ts, &r.Path, &r.SchemaPath, &r.Operation, &r.Reason); err != nil {
			return nil, &audit.StorageError{Backend: "sqlite", Operation: "scan", Cause: err}
		}
		r.Time = time.Unix(0, ts).UTC()
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, &audit.StorageError{Backend: "sqlite", Operation: "query", Cause: err}
	}

	return out, nil
}

// Count returns the total number of stored records.
func (s *SQLite) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM audit_records").Scan(&count); err != nil {
		return 0, &audit.StorageError{Backend: "sqlite", Operation: "count", Cause: err}
	}

	return count, nil
}

// DeleteBefore removes records older than the cutoff.
func (s *SQLite) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM audit_records WHERE ts < ?", cutoff.UnixNano())
	if err != nil {
		return 0, &audit.StorageError{Backend: "sqlite", Operation: "delete", Cause: err}
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, &audit.StorageError{Backend: "sqlite", Operation: "delete", Cause: err}
	}

	return deleted, nil
}

// Close releases the prepared statements and the database handle.
func (s *SQLite) Close() error {
	if s.insertStmt != nil {
		s.insertStmt.Close()
	}
	return s.db.Close()
}
