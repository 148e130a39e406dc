// Package schemaset loads declarative schema-set documents and keeps a
// registry synchronized with them.
//
// A schema set is a YAML document declaring path schemas:
//
//	version: 1
//	default: strict
//	schemas:
//	  - name: locks
//	    pattern: "/locks/.*"
//	    documentation: lock nodes are session-bound and unordered
//	    ephemeral: must
//	    sequential: cannot
//	    watched: cannot
//	  - name: app-config
//	    path: /app/config
//	    documentation: application configuration, JSON only
//	    validator: json
//	    can_be_deleted: false
//
// Each entry sets exactly one of path (exact match) or pattern (full-match
// regular expression). Omitted allowances default to can, omitted
// can_be_deleted to true, and the omitted validator to accept_all.
//
// # Components
//
//   - Loader: reads and compiles documents into schemas, with typed
//     LoadError/ParseError/CompileError failures
//   - Manager: owns a Loader and a Registry, provides atomic reload
//     (all-or-nothing: a document that fails to compile leaves the previous
//     schema set active) and hot reload via fsnotify
//
// # Hot Reload
//
//	mgr, err := schemaset.NewManager(cfg, reg, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := mgr.LoadSchemas(); err != nil {
//		log.Fatal(err)
//	}
//	go mgr.Watch(ctx) // reloads on file changes, debounced
package schemaset
