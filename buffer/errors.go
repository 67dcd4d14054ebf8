package buffer

import "fmt"

// InvalidShapeError indicates a shape with a non-positive extent or an
// element count that overflows the addressable range.
type InvalidShapeError struct {
	Shape  Shape
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid shape %s: %s", e.Shape, e.Reason)
}

// OutOfRangeError indicates an index beyond a declared extent.
type OutOfRangeError struct {
	Axis   string
	Index  int
	Extent int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %s=%d, extent %d", e.Axis, e.Index, e.Extent)
}
