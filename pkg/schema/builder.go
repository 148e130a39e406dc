package schema

import (
	"errors"
	"regexp"
	"strings"
)

// Construction errors returned by Builder.Build. A malformed schema is
// rejected here, before it can ever be registered.
var (
	// ErrMissingDocumentation indicates the required documentation text was
	// not supplied. Documentation has no default.
	ErrMissingDocumentation = errors.New("schema documentation is required")

	// ErrNilValidator indicates the data validator was explicitly set to nil.
	ErrNilValidator = errors.New("schema data validator cannot be nil")

	// ErrEmptyPath indicates an empty or blank exact path was supplied.
	ErrEmptyPath = errors.New("schema path cannot be empty")

	// ErrNilPattern indicates a nil path pattern was supplied.
	ErrNilPattern = errors.New("schema path pattern cannot be nil")
)

// Builder assembles a Schema. Unset optional fields take documented
// defaults: all allowances Can, deletion allowed, and an accept-all data
// validator. Documentation is required and has no default.
type Builder struct {
	selector      PathSelector
	selectorErr   error
	documentation string
	dataValidator DataValidator
	ephemeral     Allowance
	sequential    Allowance
	watched       Allowance
	canBeDeleted  bool
}

func newBuilder() *Builder {
	return &Builder{
		dataValidator: AcceptAll(),
		ephemeral:     Can,
		sequential:    Can,
		watched:       Can,
		canBeDeleted:  true,
	}
}

// BuilderForPath starts a builder for a schema applying only to the given
// exact node path. Exact-path schemas take precedence over pattern schemas
// during registry selection.
func BuilderForPath(path string) *Builder {
	b := newBuilder()
	if strings.TrimSpace(path) == "" {
		b.selectorErr = ErrEmptyPath
		return b
	}
	b.selector = ExactPath(path)
	return b
}

// BuilderForPattern starts a builder for a schema applying to every path the
// pattern fully matches.
func BuilderForPattern(pattern *regexp.Regexp) *Builder {
	b := newBuilder()
	if pattern == nil {
		b.selectorErr = ErrNilPattern
		return b
	}
	b.selector = PathPattern(pattern)
	return b
}

// Documentation sets the required descriptive text.
func (b *Builder) Documentation(documentation string) *Builder {
	b.documentation = documentation
	return b
}

// DataValidator sets the data validator. Passing nil is a construction
// error; use AcceptAll to opt out of content checks explicitly.
func (b *Builder) DataValidator(validator DataValidator) *Builder {
	b.dataValidator = validator
	return b
}

// Ephemeral sets the allowance for ephemeral creation.
func (b *Builder) Ephemeral(allowance Allowance) *Builder {
	b.ephemeral = allowance
	return b
}

// Sequential sets the allowance for sequential creation.
func (b *Builder) Sequential(allowance Allowance) *Builder {
	b.sequential = allowance
	return b
}

// Watched sets the allowance for watching.
func (b *Builder) Watched(allowance Allowance) *Builder {
	b.watched = allowance
	return b
}

// CanBeDeleted sets whether nodes under the schema may be deleted.
func (b *Builder) CanBeDeleted(canBeDeleted bool) *Builder {
	b.canBeDeleted = canBeDeleted
	return b
}

// Build constructs the Schema, applying defaults for unset optional fields
// and failing on missing documentation, a nil validator, or an invalid path
// selector.
func (b *Builder) Build() (*Schema, error) {
	if b.selectorErr != nil {
		return nil, b.selectorErr
	}

	if strings.TrimSpace(b.documentation) == "" {
		return nil, ErrMissingDocumentation
	}

	if b.dataValidator == nil {
		return nil, ErrNilValidator
	}

	return &Schema{
		selector:      b.selector,
		documentation: b.documentation,
		dataValidator: b.dataValidator,
		ephemeral:     b.ephemeral,
		sequential:    b.sequential,
		watched:       b.watched,
		canBeDeleted:  b.canBeDeleted,
	}, nil
}
