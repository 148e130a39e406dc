package registry

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"warden-hq/pathwarden/pkg/schema"
)

func exactSchema(t *testing.T, path, doc string) *schema.Schema {
	t.Helper()
	s, err := schema.BuilderForPath(path).Documentation(doc).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return s
}

func patternSchema(t *testing.T, pattern, doc string) *schema.Schema {
	t.Helper()
	s, err := schema.BuilderForPattern(regexp.MustCompile(pattern)).Documentation(doc).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return s
}

func TestRegistry_ExactBeatsPattern(t *testing.T) {
	r := New(nil, nil)

	pattern := patternSchema(t, "/a/.*", "pattern schema")
	exact := exactSchema(t, "/a/b", "exact schema")

	// Pattern registered first; exact must still win.
	if err := r.Register(pattern); err != nil {
		t.Fatalf("Register(pattern) error = %v", err)
	}
	if err := r.Register(exact); err != nil {
		t.Fatalf("Register(exact) error = %v", err)
	}

	got, match := r.LookupWithMatch("/a/b")
	if !got.Equal(exact) {
		t.Errorf("Lookup(/a/b) selected %s, want exact schema", got.RawPath())
	}
	if match != MatchExact {
		t.Errorf("match = %v, want MatchExact", match)
	}

	got, match = r.LookupWithMatch("/a/c")
	if !got.Equal(pattern) {
		t.Errorf("Lookup(/a/c) selected %s, want pattern schema", got.RawPath())
	}
	if match != MatchPattern {
		t.Errorf("match = %v, want MatchPattern", match)
	}
}

func TestRegistry_FirstRegisteredPatternWins(t *testing.T) {
	r := New(nil, nil)

	first := patternSchema(t, "/a/.*", "first")
	second := patternSchema(t, "/a/b.*", "second")

	if err := r.Register(first); err != nil {
		t.Fatalf("Register(first) error = %v", err)
	}
	if err := r.Register(second); err != nil {
		t.Fatalf("Register(second) error = %v", err)
	}

	// Both patterns match; registration order decides.
	got := r.Lookup("/a/b1")
	if !got.Equal(first) {
		t.Errorf("Lookup selected %s, want first-registered pattern", got.RawPath())
	}
}

func TestRegistry_FallbackSelection(t *testing.T) {
	r := New(schema.StrictDefault(), nil)

	s, match := r.LookupWithMatch("/unregistered/path")
	if match != MatchDefault {
		t.Fatalf("match = %v, want MatchDefault", match)
	}
	if err := s.ValidateDeletion(); err == nil {
		t.Error("strict fallback allowed deletion")
	}

	permissive := New(nil, nil)
	s, match = permissive.LookupWithMatch("/unregistered/path")
	if match != MatchDefault {
		t.Fatalf("match = %v, want MatchDefault", match)
	}
	if err := s.ValidateDeletion(); err != nil {
		t.Errorf("permissive fallback rejected deletion: %v", err)
	}
}

func TestRegistry_RegisterReplacesByIdentity(t *testing.T) {
	r := New(nil, nil)

	if err := r.Register(patternSchema(t, "/a/.*", "old")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(patternSchema(t, "/b/.*", "other")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Same identity, different content: replaced in place.
	replacement, err := schema.BuilderForPattern(regexp.MustCompile("/a/.*")).
		Documentation("new").
		CanBeDeleted(false).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := r.Register(replacement); err != nil {
		t.Fatalf("Register(replacement) error = %v", err)
	}

	if got := r.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if err := r.Lookup("/a/x").ValidateDeletion(); err == nil {
		t.Error("replacement schema not selected")
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := New(nil, nil)

	s := exactSchema(t, "/a/b", "d")
	if err := r.Register(s); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := r.Unregister(s.Key()); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}
	if got := r.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}

	if err := r.Unregister(s.Key()); err == nil {
		t.Error("Unregister() of a missing schema returned nil error")
	}
}

func TestRegistry_Replace(t *testing.T) {
	r := New(nil, nil)

	if err := r.Register(exactSchema(t, "/old", "old")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	before := r.Version()

	next := []*schema.Schema{
		exactSchema(t, "/new", "new exact"),
		patternSchema(t, "/new/.*", "new pattern"),
	}
	if err := r.Replace(next, schema.StrictDefault()); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if _, match := r.LookupWithMatch("/old"); match != MatchDefault {
		t.Error("old schema still selected after Replace")
	}
	if _, match := r.LookupWithMatch("/new"); match != MatchExact {
		t.Error("new exact schema not selected after Replace")
	}
	if r.Version() == before {
		t.Error("Version() unchanged after Replace")
	}
}

func TestRegistry_ReplaceRejectsDuplicates(t *testing.T) {
	r := New(nil, nil)

	if err := r.Register(exactSchema(t, "/keep", "kept")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	dup := []*schema.Schema{
		patternSchema(t, "/a/.*", "one"),
		patternSchema(t, "/a/.*", "two"),
	}
	if err := r.Replace(dup, nil); err == nil {
		t.Fatal("Replace() with duplicate patterns returned nil error")
	}

	// Failed replace keeps the previous set active.
	if _, match := r.LookupWithMatch("/keep"); match != MatchExact {
		t.Error("previous schema set lost after failed Replace")
	}
}

func TestRegistry_SchemasDeterministicOrder(t *testing.T) {
	r := New(nil, nil)

	for _, s := range []*schema.Schema{
		patternSchema(t, "/z/.*", "pattern z"),
		exactSchema(t, "/b", "exact b"),
		patternSchema(t, "/a/.*", "pattern a"),
		exactSchema(t, "/a", "exact a"),
	} {
		if err := r.Register(s); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	got := r.Schemas()
	want := []string{"/a", "/b", "/z/.*", "/a/.*"}
	if len(got) != len(want) {
		t.Fatalf("Schemas() returned %d schemas, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.RawPath() != want[i] {
			t.Errorf("Schemas()[%d] = %s, want %s", i, s.RawPath(), want[i])
		}
	}
}

func TestRegistry_ToDocumentation(t *testing.T) {
	r := New(nil, nil)

	if err := r.Register(exactSchema(t, "/a/b", "exact docs")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	doc := r.ToDocumentation()
	for _, want := range []string{"Path: /a/b", "exact docs", "Default Path: .*"} {
		if !strings.Contains(doc, want) {
			t.Errorf("ToDocumentation() missing %q in:\n%s", want, doc)
		}
	}
}

func TestRegistry_ConcurrentLookups(t *testing.T) {
	r := New(nil, nil)
	if err := r.Register(patternSchema(t, "/a/.*", "pattern")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if s := r.Lookup("/a/node"); s == nil {
					t.Error("Lookup() returned nil")
					return
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		if err := r.Register(exactSchema(t, "/a/node", "exact")); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	wg.Wait()
}
