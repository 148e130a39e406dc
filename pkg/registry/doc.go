// Package registry holds the set of registered path schemas and selects the
// single schema applicable to a concrete node path.
//
// # Selection
//
// Lookup applies a fixed precedence:
//
//  1. A schema registered for the path as an exact match wins, regardless of
//     whether any pattern also matches.
//  2. Otherwise pattern schemas are evaluated in registration order and the
//     first match wins.
//  3. Otherwise the registry-wide fallback schema applies, so Lookup never
//     fails.
//
// The fallback is chosen at construction time; schema.PermissiveDefault and
// schema.StrictDefault cover the two common postures.
//
// # Thread Safety
//
// The registry is safe for concurrent use. Lookups take a read lock;
// registration and Replace take the write lock, so concurrent readers never
// observe a partially-updated schema set. Registration is expected to be
// rare relative to lookups.
package registry
