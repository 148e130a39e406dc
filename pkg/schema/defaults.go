package schema

import "regexp"

var matchAll = regexp.MustCompile(".*")

// PermissiveDefault returns a catch-all schema that allows every operation.
// Registries use it as the fallback when no registered schema applies.
func PermissiveDefault() *Schema {
	return &Schema{
		selector:      PathPattern(matchAll),
		documentation: "default schema: all operations permitted",
		dataValidator: AcceptAll(),
		ephemeral:     Can,
		sequential:    Can,
		watched:       Can,
		canBeDeleted:  true,
	}
}

// StrictDefault returns a catch-all schema that forbids ephemeral,
// sequential, and watched nodes and disallows deletion. Registries use it as
// the fallback when unregistered paths should be locked down.
func StrictDefault() *Schema {
	return &Schema{
		selector:      PathPattern(matchAll),
		documentation: "default schema: ephemeral, sequential, watch, and delete forbidden",
		dataValidator: AcceptAll(),
		ephemeral:     Cannot,
		sequential:    Cannot,
		watched:       Cannot,
		canBeDeleted:  false,
	}
}
