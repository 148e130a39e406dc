package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// DataValidator checks whether node content is acceptable under a schema.
// Implementations must be safe for concurrent use.
type DataValidator interface {
	// Name identifies the validator in documentation listings.
	Name() string

	// IsValid reports whether the given node content is acceptable.
	IsValid(data []byte) bool
}

// AcceptAll returns a validator that accepts any content. It is the default
// validator applied by the Builder.
func AcceptAll() DataValidator {
	return acceptAllValidator{}
}

type acceptAllValidator struct{}

func (acceptAllValidator) Name() string { return "accept_all" }

func (acceptAllValidator) IsValid(data []byte) bool { return true }

// JSONData returns a validator that accepts empty content or well-formed JSON.
func JSONData() DataValidator {
	return jsonValidator{}
}

type jsonValidator struct{}

func (jsonValidator) Name() string { return "json" }

func (jsonValidator) IsValid(data []byte) bool {
	return len(data) == 0 || json.Valid(data)
}

// UTF8Data returns a validator that accepts only valid UTF-8 content.
func UTF8Data() DataValidator {
	return utf8Validator{}
}

type utf8Validator struct{}

func (utf8Validator) Name() string { return "utf8" }

func (utf8Validator) IsValid(data []byte) bool { return utf8.Valid(data) }

// RegexData returns a validator that accepts content matching the given
// pattern.
func RegexData(pattern *regexp.Regexp) DataValidator {
	return &regexValidator{pattern: pattern}
}

type regexValidator struct {
	pattern *regexp.Regexp
}

func (v *regexValidator) Name() string {
	return fmt.Sprintf("regex(%s)", v.pattern.String())
}

func (v *regexValidator) IsValid(data []byte) bool {
	return v.pattern.Match(data)
}
