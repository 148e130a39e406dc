// Package guard is the validation surface the coordination framework calls
// before issuing an operation against the namespace.
//
// Each Check method resolves the schema applicable to the target path
// through the registry, runs the schema's validation, and returns the
// resulting violation (if any) to the caller, which is expected to abort
// the operation. Along the way the guard records lookup and validation
// metrics and emits an audit record for every violation.
//
// # Basic Usage
//
//	g := guard.New(reg, collector, recorder, logger)
//
//	if err := g.CheckCreate(ctx, "/locks/worker-1", true, false, nil); err != nil {
//		return err // operation aborted, violation propagated
//	}
//	// proceed with the create
//
// # Thread Safety
//
// The guard is stateless apart from its collaborators and is safe for
// concurrent use.
package guard
