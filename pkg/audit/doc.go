// Package audit records schema violations for operator review.
//
// Every violation surfaced by the guard can be persisted as a Record: which
// path was touched, which schema was violated, the attempted operation, and
// the violation reason. The trail answers "who keeps tripping over the
// /locks policy" without grepping process logs.
//
// # Components
//
//   - Storage: the persistence interface, with SQLite and in-memory backends
//     under audit/storage
//   - Recorder: an asynchronous buffered writer so validation hot paths
//     never block on storage
//   - Pruner and Scheduler: retention enforcement on a cron schedule
//
// # Basic Usage
//
//	store, err := storage.NewSQLite(storage.DefaultSQLiteConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	recorder := audit.NewRecorder(store, audit.DefaultRecorderConfig())
//	defer recorder.Close()
//
//	recorder.Record(audit.NewRecord("/locks/a", "/locks/.*", "create", "must be ephemeral"))
//
// # Thread Safety
//
// Recorder.Record is safe for concurrent use and never blocks: when the
// buffer is full the record is dropped and counted.
package audit
