package schemaset

import "fmt"

// LoadError indicates a schema-set file could not be read.
type LoadError struct {
	FilePath string
	Message  string
	Cause    error
}

// Error returns the error message.
func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema set %q: %s: %v", e.FilePath, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema set %q: %s", e.FilePath, e.Message)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ParseError indicates a schema-set file is not valid YAML.
type ParseError struct {
	FilePath string
	Cause    error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse schema set %q: %v", e.FilePath, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// CompileError indicates a schema definition could not be compiled into a
// Schema.
type CompileError struct {
	FilePath   string
	SchemaName string
	Message    string
	Cause      error
}

// Error returns the error message.
func (e *CompileError) Error() string {
	name := e.SchemaName
	if name == "" {
		name = "(unnamed)"
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid schema %s in %q: %s: %v", name, e.FilePath, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid schema %s in %q: %s", name, e.FilePath, e.Message)
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Cause
}
