package audit

import "fmt"

// StorageError indicates a failed storage operation.
type StorageError struct {
	// Backend identifies the storage backend ("sqlite", "memory").
	Backend string

	// Operation is the storage operation that failed.
	Operation string

	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *StorageError) Error() string {
	return fmt.Sprintf("audit storage %s %s: %v", e.Backend, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Cause
}
