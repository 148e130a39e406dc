package storage

// sqliteSchema bootstraps the audit database. Timestamps are stored as
// nanoseconds since the Unix epoch so time-range queries stay integer
// comparisons.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS audit_records (
	id          TEXT PRIMARY KEY,
	ts          INTEGER NOT NULL,
	path        TEXT NOT NULL,
	schema_path TEXT NOT NULL,
	operation   TEXT NOT NULL,
	reason      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_records_ts ON audit_records (ts);
CREATE INDEX IF NOT EXISTS idx_audit_records_path ON audit_records (path);
CREATE INDEX IF NOT EXISTS idx_audit_records_reason ON audit_records (reason);
`
