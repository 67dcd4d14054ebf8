package pixelgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/metadata"
	"github.com/hupe1980/pixelgo/pixel"
)

var (
	// ErrInvalidShape is returned when a buffer is constructed with a zero or
	// negative extent, or with an element count that overflows.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrIndexOutOfRange is returned for sample access beyond the declared
	// extents.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTypeMismatch is returned when an extraction requests a type other
	// than the stored discriminant.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrKeyNotFound is returned for metadata lookups of absent keys.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnknownPixelType is returned when a discriminant outside the closed
	// catalogue reaches a dispatch site.
	ErrUnknownPixelType = errors.New("unknown pixel type")
)

// TypeMismatchError indicates a variant extraction whose requested type does
// not match the active discriminant.
type TypeMismatchError struct {
	Want pixel.Type
	Got  pixel.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("pixel type mismatch: buffer holds %s, requested %s", e.Got, e.Want)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// translateError lifts layer-specific errors into the package's public error
// contract. The original error remains accessible via errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ise *buffer.InvalidShapeError
	if errors.As(err, &ise) {
		return fmt.Errorf("%w: %w", ErrInvalidShape, err)
	}
	var oor *buffer.OutOfRangeError
	if errors.As(err, &oor) {
		return fmt.Errorf("%w: %w", ErrIndexOutOfRange, err)
	}
	var knf *metadata.KeyNotFoundError
	if errors.As(err, &knf) {
		return fmt.Errorf("%w: %w", ErrKeyNotFound, err)
	}
	var tme *metadata.TypeMismatchError
	if errors.As(err, &tme) {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}

	return err
}
