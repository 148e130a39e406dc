package registry

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"warden-hq/pathwarden/pkg/schema"
)

// Match describes how a lookup resolved its schema.
type Match int

const (
	// MatchExact means an exact-path schema was selected.
	MatchExact Match = iota

	// MatchPattern means a pattern schema was selected.
	MatchPattern

	// MatchDefault means no registered schema applied and the fallback was
	// selected.
	MatchDefault
)

// String returns the lowercase name of the match kind.
func (m Match) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPattern:
		return "pattern"
	case MatchDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Registry is a thread-safe store of path schemas with deterministic
// selection. Exact-path schemas are kept in a map keyed by path; pattern
// schemas are kept in a slice preserving registration order, which doubles
// as the tie-break when multiple patterns match the same path
// (first registered wins).
type Registry struct {
	mu       sync.RWMutex
	exact    map[string]*schema.Schema
	patterns []*schema.Schema
	fallback *schema.Schema
	version  string
	loadTime time.Time
	logger   *slog.Logger
}

// New creates a registry with the given fallback schema. A nil fallback
// defaults to schema.PermissiveDefault.
func New(fallback *schema.Schema, logger *slog.Logger) *Registry {
	if fallback == nil {
		fallback = schema.PermissiveDefault()
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{
		exact:    make(map[string]*schema.Schema),
		fallback: fallback,
		loadTime: time.Now(),
		logger:   logger.With("component", "registry"),
	}
	r.updateVersion()

	return r
}

// Register adds a schema to the registry. A schema with the same path
// identity replaces the existing one in place, so a replaced pattern schema
// keeps its position in the selection order.
func (r *Registry) Register(s *schema.Schema) error {
	if s == nil {
		return &RegistryError{Operation: "register", Message: "schema cannot be nil"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s.IsExact() {
		if _, ok := r.exact[s.RawPath()]; ok {
			r.logger.Debug("replacing exact schema", "path", s.RawPath())
		}
		r.exact[s.RawPath()] = s
		r.updateVersion()
		return nil
	}

	for i, existing := range r.patterns {
		if existing.Equal(s) {
			r.logger.Debug("replacing pattern schema", "pattern", s.RawPath())
			r.patterns[i] = s
			r.updateVersion()
			return nil
		}
	}

	r.patterns = append(r.patterns, s)
	r.updateVersion()

	return nil
}

// Unregister removes the schema with the given identity key.
func (r *Registry) Unregister(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for path, s := range r.exact {
		if s.Key() == key {
			delete(r.exact, path)
			r.updateVersion()
			return nil
		}
	}

	for i, s := range r.patterns {
		if s.Key() == key {
			r.patterns = append(r.patterns[:i], r.patterns[i+1:]...)
			r.updateVersion()
			return nil
		}
	}

	return &RegistryError{Operation: "unregister", Key: key, Message: "schema not found"}
}

// Lookup returns the schema applicable to the given path. It never returns
// nil: when no registered schema applies, the fallback schema is returned.
func (r *Registry) Lookup(path string) *schema.Schema {
	s, _ := r.LookupWithMatch(path)
	return s
}

// LookupWithMatch returns the applicable schema together with how it was
// selected.
func (r *Registry) LookupWithMatch(path string) (*schema.Schema, Match) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.exact[path]; ok {
		return s, MatchExact
	}

	for _, s := range r.patterns {
		if s.Matches(path) {
			return s, MatchPattern
		}
	}

	return r.fallback, MatchDefault
}

// Fallback returns the registry's fallback schema.
func (r *Registry) Fallback() *schema.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.fallback
}

// Replace atomically swaps the entire schema set. All schemas are validated
// before any are applied; on error the previous set remains active. A nil
// fallback keeps the current one. Replace is the hot-reload entry point.
func (r *Registry) Replace(schemas []*schema.Schema, fallback *schema.Schema) error {
	exact := make(map[string]*schema.Schema, len(schemas))
	var patterns []*schema.Schema

	for _, s := range schemas {
		if s == nil {
			return &RegistryError{Operation: "replace", Message: "schema cannot be nil"}
		}
		if s.IsExact() {
			if _, ok := exact[s.RawPath()]; ok {
				return &RegistryError{Operation: "replace", Key: s.Key(), Message: "duplicate exact path"}
			}
			exact[s.RawPath()] = s
			continue
		}
		for _, existing := range patterns {
			if existing.Equal(s) {
				return &RegistryError{Operation: "replace", Key: s.Key(), Message: "duplicate pattern"}
			}
		}
		patterns = append(patterns, s)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.exact = exact
	r.patterns = patterns
	if fallback != nil {
		r.fallback = fallback
	}
	r.loadTime = time.Now()
	r.updateVersion()

	r.logger.Info("schema set replaced",
		"exact", len(exact),
		"patterns", len(patterns),
		"version", r.version,
	)

	return nil
}

// Count returns the number of registered schemas, excluding the fallback.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.exact) + len(r.patterns)
}

// CountByKind returns the number of exact and pattern schemas.
func (r *Registry) CountByKind() (exact, patterns int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.exact), len(r.patterns)
}

// Schemas returns a deterministic snapshot of all registered schemas:
// exact-path schemas sorted by path, then pattern schemas in registration
// order. The slice is a copy and will not be modified by the registry.
func (r *Registry) Schemas() []*schema.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.exact))
	for path := range r.exact {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := make([]*schema.Schema, 0, len(r.exact)+len(r.patterns))
	for _, path := range paths {
		out = append(out, r.exact[path])
	}
	out = append(out, r.patterns...)

	return out
}

// Version returns an opaque identifier for the current schema set. It
// changes whenever schemas are registered, unregistered, or replaced.
func (r *Registry) Version() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.version
}

// LoadTime returns when the schema set was last replaced.
func (r *Registry) LoadTime() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.loadTime
}

// ToDocumentation renders the operator-facing listing of every registered
// schema followed by the fallback, in the Schemas ordering.
func (r *Registry) ToDocumentation() string {
	var b strings.Builder

	for _, s := range r.Schemas() {
		b.WriteString(s.ToDocumentation())
		b.WriteString("\n")
	}

	b.WriteString("Default ")
	b.WriteString(r.Fallback().ToDocumentation())

	return b.String()
}

// updateVersion recomputes the version hash. Callers must hold the write
// lock.
func (r *Registry) updateVersion() {
	h := sha256.New()

	paths := make([]string, 0, len(r.exact))
	for path := range r.exact {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		h.Write([]byte(r.exact[path].Key()))
	}
	for _, s := range r.patterns {
		h.Write([]byte(s.Key()))
	}
	h.Write([]byte(r.fallback.Key()))

	r.version = fmt.Sprintf("%x", h.Sum(nil))[:16]
}
