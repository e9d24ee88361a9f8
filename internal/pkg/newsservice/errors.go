package newsservice

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the referenced news id does not exist.
var ErrNotFound = errors.New("news not found")

// ValidationError carries field-level validation messages. It is the
// expected outcome for malformed input, not a service fault.
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// StorageError signals a failed write or delete on the storage backend.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// PersistenceError signals a failed database operation.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
