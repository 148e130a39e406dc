package schema

import "fmt"

// Violation reasons form a fixed, enumerable set. Callers that need to react
// to a specific violation compare against these constants rather than
// parsing error text.
const (
	ReasonCannotBeDeleted    = "cannot be deleted"
	ReasonCannotBeWatched    = "cannot be watched"
	ReasonMustBeWatched      = "must be watched"
	ReasonCannotBeEphemeral  = "cannot be ephemeral"
	ReasonMustBeEphemeral    = "must be ephemeral"
	ReasonCannotBeSequential = "cannot be sequential"
	ReasonMustBeSequential   = "must be sequential"
	ReasonDataNotValid       = "data is not valid"
)

// Violation is the error returned when an attempted operation contradicts a
// node's declared schema. It carries the violated schema so the caller can
// produce an attributable failure message.
type Violation struct {
	// Schema is the schema that was violated.
	Schema *Schema

	// Reason is a short human-readable reason drawn from the Reason*
	// constants.
	Reason string
}

// Error returns the violation message.
func (v *Violation) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", v.Schema.RawPath(), v.Reason)
}

func newViolation(s *Schema, reason string) error {
	return &Violation{Schema: s, Reason: reason}
}
