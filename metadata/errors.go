package metadata

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when a zero or malformed Value is stored.
var ErrInvalidValue = errors.New("invalid metadata value")

// KeyNotFoundError indicates a lookup for a key the map does not hold.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("metadata key %q not found", e.Key)
}

// TypeMismatchError indicates that a key is present but its stored
// discriminant is not the requested kind.
type TypeMismatchError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("metadata key %q holds %s, requested %s", e.Key, e.Got, e.Want)
}
