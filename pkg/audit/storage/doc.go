// Package storage provides persistence backends for audit records.
//
// Two backends are available:
//
//   - SQLite: embedded database for single-node deployments, WAL mode,
//     prepared statements, automatic schema bootstrap
//   - Memory: in-memory storage for tests
//
// Both are safe for concurrent use and return query results newest first.
package storage
