package cli

import (
	"errors"
	"testing"
)

func TestCommandError(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := &CommandError{
		Command: "lint",
		Err:     underlyingErr,
	}

	expected := "command lint failed: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := NewCommandError("lint", underlyingErr)

	if err.Unwrap() != underlyingErr {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlyingErr)
	}

	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is() should work with CommandError.Unwrap()")
	}
}

func TestExitError(t *testing.T) {
	underlyingErr := errors.New("schema violation at /locks: cannot be deleted")
	err := NewExitError(ExitViolation, underlyingErr)

	if err.Code != ExitViolation {
		t.Errorf("Code = %d, want %d", err.Code, ExitViolation)
	}
	if err.Error() != underlyingErr.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), underlyingErr.Error())
	}
	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is() should work with ExitError.Unwrap()")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Error("errors.As() should extract *ExitError")
	}
}
