package schema

import "fmt"

// Schema is an immutable policy record bound to an exact node path or a path
// pattern. It documents and enforces the operations allowed on matching
// nodes. Instances are constructed once through the Builder, registered,
// and consulted read-only for the lifetime of the process; a policy change
// means building and registering a new Schema.
type Schema struct {
	selector      PathSelector
	documentation string
	dataValidator DataValidator
	ephemeral     Allowance
	sequential    Allowance
	watched       Allowance
	canBeDeleted  bool
}

// Selector returns the schema's path selector.
func (s *Schema) Selector() PathSelector { return s.selector }

// IsExact reports whether the schema is bound to an exact path rather than
// a pattern.
func (s *Schema) IsExact() bool { return s.selector.IsExact() }

// Matches reports whether the schema applies to the given path.
func (s *Schema) Matches(path string) bool { return s.selector.Matches(path) }

// RawPath returns the exact path if one was used, otherwise the textual
// source of the pattern. Intended for logging and selection listings.
func (s *Schema) RawPath() string { return s.selector.Raw() }

// Documentation returns the descriptive text attached to the schema.
func (s *Schema) Documentation() string { return s.documentation }

// Validator returns the schema's data validator.
func (s *Schema) Validator() DataValidator { return s.dataValidator }

// Ephemeral returns the allowance for ephemeral creation.
func (s *Schema) Ephemeral() Allowance { return s.ephemeral }

// Sequential returns the allowance for sequential creation.
func (s *Schema) Sequential() Allowance { return s.sequential }

// Watched returns the allowance for watching.
func (s *Schema) Watched() Allowance { return s.watched }

// CanBeDeleted reports whether nodes under this schema may be deleted.
func (s *Schema) CanBeDeleted() bool { return s.canBeDeleted }

// Key returns the schema's identity key. Identity is defined solely by the
// path selector: registries key and dedupe schemas by the paths they govern,
// not by their full content, so two schemas for the same path are the same
// schema regardless of documentation, validator, or allowances.
func (s *Schema) Key() string { return s.selector.Key() }

// Equal reports whether the two schemas have the same path identity. See Key
// for the rationale.
func (s *Schema) Equal(other *Schema) bool {
	return other != nil && s.Key() == other.Key()
}

// ValidateDeletion checks that the schema allows node deletion.
// Returns a *Violation with ReasonCannotBeDeleted otherwise.
func (s *Schema) ValidateDeletion() error {
	if !s.canBeDeleted {
		return newViolation(s, ReasonCannotBeDeleted)
	}
	return nil
}

// ValidateWatcher checks that the schema's watched allowance matches the
// attempted watch state. Can succeeds regardless of isWatching.
func (s *Schema) ValidateWatcher(isWatching bool) error {
	if isWatching && s.watched == Cannot {
		return newViolation(s, ReasonCannotBeWatched)
	}

	if !isWatching && s.watched == Must {
		return newViolation(s, ReasonMustBeWatched)
	}

	return nil
}

// ValidateCreate checks that the schema allows creating a node with the
// given mode and content. Checks run in a fixed order: ephemeral, then
// sequential, then data, and the first violated check is reported.
func (s *Schema) ValidateCreate(isEphemeral, isSequential bool, data []byte) error {
	if isEphemeral && s.ephemeral == Cannot {
		return newViolation(s, ReasonCannotBeEphemeral)
	}

	if !isEphemeral && s.ephemeral == Must {
		return newViolation(s, ReasonMustBeEphemeral)
	}

	if isSequential && s.sequential == Cannot {
		return newViolation(s, ReasonCannotBeSequential)
	}

	if !isSequential && s.sequential == Must {
		return newViolation(s, ReasonMustBeSequential)
	}

	return s.ValidateData(data)
}

// ValidateData checks the node content against the schema's data validator.
func (s *Schema) ValidateData(data []byte) error {
	if !s.dataValidator.IsValid(data) {
		return newViolation(s, ReasonDataNotValid)
	}
	return nil
}

// String returns a single-line debug representation.
func (s *Schema) String() string {
	return fmt.Sprintf("Schema{path=%s, documentation=%q, validator=%s, ephemeral=%s, sequential=%s, watched=%s, canBeDeleted=%t}",
		s.RawPath(), s.documentation, s.dataValidator.Name(), s.ephemeral, s.sequential, s.watched, s.canBeDeleted)
}

// ToDocumentation renders a deterministic multi-line description of the
// schema for operator-facing policy listings. The exact formatting is not a
// compatibility contract.
func (s *Schema) ToDocumentation() string {
	return "Path: " + s.RawPath() + "\n" +
		"Documentation: " + s.documentation + "\n" +
		"Validator: " + s.dataValidator.Name() + "\n" +
		fmt.Sprintf("ephemeral: %s | sequential: %s | watched: %s | canBeDeleted: %t", s.ephemeral, s.sequential, s.watched, s.canBeDeleted) + "\n"
}
