package schema

import "regexp"

// PathSelector identifies the set of node paths a Schema applies to. It is a
// tagged union: exactly one of an exact path or a compiled pattern is set,
// which makes the "never both, never neither" invariant structural rather
// than checked at every use.
type PathSelector struct {
	exact   string
	pattern *regexp.Regexp
}

// ExactPath returns a selector matching one node path exactly.
func ExactPath(path string) PathSelector {
	return PathSelector{exact: path}
}

// PathPattern returns a selector matching every path the pattern fully
// matches. A pattern that matches only a prefix of a path does not select it.
func PathPattern(pattern *regexp.Regexp) PathSelector {
	return PathSelector{pattern: pattern}
}

// IsExact reports whether the selector is bound to an exact path.
func (s PathSelector) IsExact() bool {
	return s.pattern == nil && s.exact != ""
}

// IsZero reports whether the selector has neither an exact path nor a
// pattern. A zero selector matches nothing.
func (s PathSelector) IsZero() bool {
	return s.pattern == nil && s.exact == ""
}

// Matches reports whether the selector applies to the given path. Exact
// selectors require string equality; pattern selectors require the pattern
// to match the entire path.
func (s PathSelector) Matches(path string) bool {
	if s.pattern == nil {
		return s.exact != "" && s.exact == path
	}

	loc := s.pattern.FindStringIndex(path)
	return loc != nil && loc[0] == 0 && loc[1] == len(path)
}

// Raw returns the exact path if set, otherwise the textual source of the
// pattern. Intended for logging and documentation, not for matching.
func (s PathSelector) Raw() string {
	if s.pattern != nil {
		return s.pattern.String()
	}
	return s.exact
}

// Key returns the identity key for the selector. Two selectors with the same
// key select the same schema. The key is kind-prefixed so an exact path and
// a pattern with identical text remain distinct.
func (s PathSelector) Key() string {
	if s.pattern != nil {
		return "pattern:" + s.pattern.String()
	}
	return "path:" + s.exact
}
