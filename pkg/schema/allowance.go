package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Allowance is the tri-state permission governing a single node property.
type Allowance int

const (
	// Can places no constraint on the property.
	Can Allowance = iota

	// Must requires the property.
	Must

	// Cannot forbids the property.
	Cannot
)

// String returns the lowercase name of the allowance.
func (a Allowance) String() string {
	switch a {
	case Can:
		return "can"
	case Must:
		return "must"
	case Cannot:
		return "cannot"
	default:
		return "unknown"
	}
}

// ParseAllowance parses an allowance from its textual form.
// Matching is case-insensitive.
func ParseAllowance(s string) (Allowance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "can":
		return Can, nil
	case "must":
		return Must, nil
	case "cannot":
		return Cannot, nil
	default:
		return Can, fmt.Errorf("invalid allowance %q (expected can, must, or cannot)", s)
	}
}

// UnmarshalYAML decodes an allowance from a YAML scalar.
func (a *Allowance) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseAllowance(s)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// MarshalYAML encodes the allowance as its textual form.
func (a Allowance) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}
