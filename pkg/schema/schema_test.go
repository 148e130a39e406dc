package schema

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func mustBuild(t *testing.T, b *Builder) *Schema {
	t.Helper()
	s, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return s
}

func violationReason(t *testing.T, err error) string {
	t.Helper()
	var v *Violation
	if !errors.As(err, &v) {
		t.Fatalf("error %v is not a *Violation", err)
	}
	return v.Reason
}

func TestSchema_ValidateDeletion(t *testing.T) {
	tests := []struct {
		name         string
		canBeDeleted bool
		wantReason   string
	}{
		{
			name:         "deletable schema allows deletion",
			canBeDeleted: true,
		},
		{
			name:         "protected schema rejects deletion",
			canBeDeleted: false,
			wantReason:   ReasonCannotBeDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustBuild(t, BuilderForPath("/app/config").
				Documentation("test schema").
				CanBeDeleted(tt.canBeDeleted))

			err := s.ValidateDeletion()
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("ValidateDeletion() error = %v, want nil", err)
				}
				return
			}

			if got := violationReason(t, err); got != tt.wantReason {
				t.Errorf("reason = %q, want %q", got, tt.wantReason)
			}
		})
	}
}

func TestSchema_ValidateWatcher(t *testing.T) {
	tests := []struct {
		name       string
		watched    Allowance
		isWatching bool
		wantReason string
	}{
		{
			name:       "can watched watching",
			watched:    Can,
			isWatching: true,
		},
		{
			name:       "can watched not watching",
			watched:    Can,
			isWatching: false,
		},
		{
			name:       "cannot watched watching",
			watched:    Cannot,
			isWatching: true,
			wantReason: ReasonCannotBeWatched,
		},
		{
			name:       "cannot watched not watching",
			watched:    Cannot,
			isWatching: false,
		},
		{
			name:       "must watched watching",
			watched:    Must,
			isWatching: true,
		},
		{
			name:       "must watched not watching",
			watched:    Must,
			isWatching: false,
			wantReason: ReasonMustBeWatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustBuild(t, BuilderForPath("/app/config").
				Documentation("test schema").
				Watched(tt.watched))

			err := s.ValidateWatcher(tt.isWatching)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("ValidateWatcher(%t) error = %v, want nil", tt.isWatching, err)
				}
				return
			}

			if got := violationReason(t, err); got != tt.wantReason {
				t.Errorf("reason = %q, want %q", got, tt.wantReason)
			}
		})
	}
}

func TestSchema_ValidateCreate(t *testing.T) {
	tests := []struct {
		name         string
		ephemeral    Allowance
		sequential   Allowance
		isEphemeral  bool
		isSequential bool
		wantReason   string
	}{
		{
			name:       "unconstrained permanent node",
			ephemeral:  Can,
			sequential: Can,
		},
		{
			name:        "unconstrained ephemeral sequential node",
			ephemeral:   Can,
			sequential:  Can,
			isEphemeral: true,
		},
		{
			name:        "forbidden ephemeral",
			ephemeral:   Cannot,
			sequential:  Can,
			isEphemeral: true,
			wantReason:  ReasonCannotBeEphemeral,
		},
		{
			name:       "required ephemeral missing",
			ephemeral:  Must,
			sequential: Can,
			wantReason: ReasonMustBeEphemeral,
		},
		{
			name:         "forbidden sequential",
			ephemeral:    Can,
			sequential:   Cannot,
			isSequential: true,
			wantReason:   ReasonCannotBeSequential,
		},
		{
			name:       "required sequential missing",
			ephemeral:  Can,
			sequential: Must,
			wantReason: ReasonMustBeSequential,
		},
		{
			// Both constraints are violated; the ephemeral check runs first
			// and its reason must be the one reported.
			name:         "ephemeral violation reported before sequential",
			ephemeral:    Cannot,
			sequential:   Cannot,
			isEphemeral:  true,
			isSequential: true,
			wantReason:   ReasonCannotBeEphemeral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustBuild(t, BuilderForPath("/app/config").
				Documentation("test schema").
				Ephemeral(tt.ephemeral).
				Sequential(tt.sequential))

			err := s.ValidateCreate(tt.isEphemeral, tt.isSequential, nil)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("ValidateCreate() error = %v, want nil", err)
				}
				return
			}

			if got := violationReason(t, err); got != tt.wantReason {
				t.Errorf("reason = %q, want %q", got, tt.wantReason)
			}
		})
	}
}

func TestSchema_CanAllowanceNeverFails(t *testing.T) {
	s := mustBuild(t, BuilderForPath("/app/config").
		Documentation("fully unconstrained schema"))

	for _, isEphemeral := range []bool{true, false} {
		for _, isSequential := range []bool{true, false} {
			if err := s.ValidateCreate(isEphemeral, isSequential, []byte("x")); err != nil {
				t.Errorf("ValidateCreate(%t, %t) error = %v, want nil", isEphemeral, isSequential, err)
			}
		}
	}

	for _, isWatching := range []bool{true, false} {
		if err := s.ValidateWatcher(isWatching); err != nil {
			t.Errorf("ValidateWatcher(%t) error = %v, want nil", isWatching, err)
		}
	}
}

func TestSchema_ValidateData(t *testing.T) {
	s := mustBuild(t, BuilderForPath("/app/config").
		Documentation("json only").
		DataValidator(JSONData()))

	if err := s.ValidateData([]byte(`{"ok":true}`)); err != nil {
		t.Errorf("ValidateData(valid json) error = %v, want nil", err)
	}

	err := s.ValidateData([]byte("not json"))
	if got := violationReason(t, err); got != ReasonDataNotValid {
		t.Errorf("reason = %q, want %q", got, ReasonDataNotValid)
	}
}

func TestSchema_ValidateCreate_DataCheckedLast(t *testing.T) {
	s := mustBuild(t, BuilderForPath("/app/config").
		Documentation("ephemeral forbidden, json only").
		Ephemeral(Cannot).
		DataValidator(JSONData()))

	// Invalid data and a forbidden mode: the mode check wins.
	err := s.ValidateCreate(true, false, []byte("not json"))
	if got := violationReason(t, err); got != ReasonCannotBeEphemeral {
		t.Errorf("reason = %q, want %q", got, ReasonCannotBeEphemeral)
	}

	// Valid mode, invalid data.
	err = s.ValidateCreate(false, false, []byte("not json"))
	if got := violationReason(t, err); got != ReasonDataNotValid {
		t.Errorf("reason = %q, want %q", got, ReasonDataNotValid)
	}
}

func TestSchema_IdentityByPathOnly(t *testing.T) {
	a := mustBuild(t, BuilderForPath("/a/b").
		Documentation("first"))

	b := mustBuild(t, BuilderForPath("/a/b").
		Documentation("entirely different").
		Ephemeral(Must).
		Sequential(Cannot).
		Watched(Cannot).
		CanBeDeleted(false).
		DataValidator(JSONData()))

	if !a.Equal(b) {
		t.Error("schemas with the same exact path must be equal regardless of other fields")
	}

	if a.Key() != b.Key() {
		t.Errorf("Key() mismatch: %q vs %q", a.Key(), b.Key())
	}

	c := mustBuild(t, BuilderForPath("/a/c").Documentation("other path"))
	if a.Equal(c) {
		t.Error("schemas with different paths must not be equal")
	}
}

func TestSchema_ExactAndPatternIdentityDistinct(t *testing.T) {
	exact := mustBuild(t, BuilderForPath("/a/b").Documentation("exact"))
	pattern := mustBuild(t, BuilderForPattern(regexp.MustCompile("/a/b")).Documentation("pattern"))

	if exact.Equal(pattern) {
		t.Error("an exact schema and a pattern schema with identical text must not share identity")
	}
}

func TestSchema_RawPath(t *testing.T) {
	exact := mustBuild(t, BuilderForPath("/a/b").Documentation("exact"))
	if got := exact.RawPath(); got != "/a/b" {
		t.Errorf("RawPath() = %q, want %q", got, "/a/b")
	}

	pattern := mustBuild(t, BuilderForPattern(regexp.MustCompile("/a/.*")).Documentation("pattern"))
	if got := pattern.RawPath(); got != "/a/.*" {
		t.Errorf("RawPath() = %q, want %q", got, "/a/.*")
	}
}

func TestSchema_Matches(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		path    string
		matches bool
	}{
		{
			name:    "exact match",
			schema:  mustBuild(t, BuilderForPath("/a/b").Documentation("d")),
			path:    "/a/b",
			matches: true,
		},
		{
			name:    "exact mismatch",
			schema:  mustBuild(t, BuilderForPath("/a/b").Documentation("d")),
			path:    "/a/b/c",
			matches: false,
		},
		{
			name:    "pattern full match",
			schema:  mustBuild(t, BuilderForPattern(regexp.MustCompile("/a/.*")).Documentation("d")),
			path:    "/a/b/c",
			matches: true,
		},
		{
			name:    "pattern prefix only is not a match",
			schema:  mustBuild(t, BuilderForPattern(regexp.MustCompile("/a/b")).Documentation("d")),
			path:    "/a/b/c",
			matches: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schema.Matches(tt.path); got != tt.matches {
				t.Errorf("Matches(%q) = %t, want %t", tt.path, got, tt.matches)
			}
		})
	}
}

func TestSchema_ToDocumentation(t *testing.T) {
	s := mustBuild(t, BuilderForPattern(regexp.MustCompile("/locks/.*")).
		Documentation("lock nodes").
		Ephemeral(Must).
		Sequential(Cannot).
		Watched(Cannot))

	doc := s.ToDocumentation()
	for _, want := range []string{
		"Path: /locks/.*",
		"Documentation: lock nodes",
		"Validator: accept_all",
		"ephemeral: must | sequential: cannot | watched: cannot | canBeDeleted: true",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("ToDocumentation() missing %q in:\n%s", want, doc)
		}
	}
}

func TestViolation_Error(t *testing.T) {
	s := mustBuild(t, BuilderForPath("/a/b").Documentation("d").CanBeDeleted(false))

	err := s.ValidateDeletion()
	want := "schema violation at /a/b: cannot be deleted"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
