package storage

import (
	"errors"
	"fmt"
)

// =============================================================================
// Sentinel Errors
// =============================================================================

var (
	// ErrNotFound is returned when a requested object doesn't exist.
	ErrNotFound = errors.New("object not found")

	// ErrKeyExists is returned by Put when the key is taken and overwrite is off.
	ErrKeyExists = errors.New("object already exists at this key")

	// ErrInvalidKey is returned for empty, absolute or escaping keys.
	ErrInvalidKey = errors.New("invalid storage key")

	// ErrTooLarge is returned when an object exceeds PutOptions.MaxSize.
	ErrTooLarge = errors.New("object exceeds maximum size")

	// ErrAccessDenied is returned when the provider rejects the credentials.
	ErrAccessDenied = errors.New("access denied")

	// ErrNoPublicURL is returned by URL when a permanent URL was asked for
	// and the bucket has no public domain.
	ErrNoPublicURL = errors.New("no public URL configured")
)

// =============================================================================
// Structured Error Type
// =============================================================================

// StorageError records the operation and key of a failed storage call.
// It unwraps to the sentinel errors above.
type StorageError struct {
	Op  string // "Put", "Get", "Delete", "URL", "Exists"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error indicates an object was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsKeyExists returns true if the error indicates a key already exists.
func IsKeyExists(err error) bool {
	return errors.Is(err, ErrKeyExists)
}

// IsInvalidKey returns true if the error indicates an invalid storage key.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}
