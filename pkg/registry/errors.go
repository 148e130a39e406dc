package registry

import "fmt"

// RegistryError indicates a failed registry mutation.
type RegistryError struct {
	// Operation is the registry operation that failed.
	Operation string

	// Key is the schema identity key involved, if any.
	Key string

	// Message describes the failure.
	Message string
}

// Error returns the error message.
func (e *RegistryError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("registry %s %s: %s", e.Operation, e.Key, e.Message)
	}
	return fmt.Sprintf("registry %s: %s", e.Operation, e.Message)
}
