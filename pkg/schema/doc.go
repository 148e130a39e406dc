// Package schema defines path policies for a hierarchical coordination
// namespace (a tree of named nodes, as used by distributed coordination
// services such as ZooKeeper-compatible systems).
//
// A Schema declares, for an exact node path or a path pattern, which
// operations a client may perform on matching nodes: whether node content is
// well-formed, whether nodes may/must/must-not be ephemeral, sequential, or
// watched, and whether nodes may ever be deleted. Infrastructure code
// consults the schema before issuing an operation and aborts on a Violation,
// failing fast instead of silently creating nodes that break operational
// assumptions.
//
// # Allowance Model
//
// Each constrained property (ephemeral, sequential, watched) carries a
// tri-state Allowance:
//
//   - Can: no constraint, the common case
//   - Must: the property is required
//   - Cannot: the property is forbidden
//
// Three discrete values avoid the unrepresentable "both required and
// forbidden" state that two booleans would allow, and keep every check a
// single equality comparison.
//
// # Identity
//
// Schema equality is defined solely by the path selector. Two schemas bound
// to the same path or pattern are the same schema regardless of their
// documentation, validator, or allowances, so registries can key and dedupe
// schemas by path identity alone.
//
// # Basic Usage
//
//	locks, err := schema.BuilderForPattern(regexp.MustCompile("/locks/.*")).
//		Documentation("lock nodes are session-bound and unordered").
//		Ephemeral(schema.Must).
//		Sequential(schema.Cannot).
//		Watched(schema.Cannot).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := locks.ValidateCreate(false, false, nil); err != nil {
//		var v *schema.Violation
//		if errors.As(err, &v) {
//			// v.Reason == schema.ReasonMustBeEphemeral
//		}
//	}
//
// # Thread Safety
//
// Schema instances are immutable after construction. All validation
// operations are pure reads and are safe for concurrent use without
// synchronization.
package schema
