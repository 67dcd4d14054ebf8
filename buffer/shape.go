package buffer

import (
	"fmt"
	"math"
)

// Shape declares the extent of each of the five buffer dimensions: the X and
// Y spatial axes, the Z focal axis, the T time axis and the C channel axis.
//
// Every extent of a valid shape is at least 1. A plane is one XY slice; a
// buffer holds Z*T*C planes.
type Shape struct {
	X, Y, Z, T, C int
}

// axes pairs each extent with its name, in storage order (X fastest).
func (s Shape) axes() [5]struct {
	name   string
	extent int
} {
	return [5]struct {
		name   string
		extent int
	}{
		{"x", s.X}, {"y", s.Y}, {"z", s.Z}, {"t", s.T}, {"c", s.C},
	}
}

// Validate rejects shapes with non-positive extents or a total element count
// that overflows int.
func (s Shape) Validate() error {
	n := 1
	for _, ax := range s.axes() {
		if ax.extent <= 0 {
			return &InvalidShapeError{Shape: s, Reason: fmt.Sprintf("extent %s=%d must be positive", ax.name, ax.extent)}
		}
		if n > math.MaxInt/ax.extent {
			return &InvalidShapeError{Shape: s, Reason: "element count overflows int"}
		}
		n *= ax.extent
	}
	return nil
}

// Len returns the total number of samples the shape addresses.
// The result is meaningful only for validated shapes.
func (s Shape) Len() int {
	return s.X * s.Y * s.Z * s.T * s.C
}

// PlaneLen returns the number of samples in one XY plane.
func (s Shape) PlaneLen() int {
	return s.X * s.Y
}

// Planes returns the number of XY planes the shape addresses.
func (s Shape) Planes() int {
	return s.Z * s.T * s.C
}

// Index maps a five-dimensional coordinate to a linear sample index,
// rejecting any coordinate beyond its declared extent.
func (s Shape) Index(x, y, z, t, c int) (int, error) {
	coords := [5]int{x, y, z, t, c}
	for i, ax := range s.axes() {
		if coords[i] < 0 || coords[i] >= ax.extent {
			return 0, &OutOfRangeError{Axis: ax.name, Index: coords[i], Extent: ax.extent}
		}
	}
	return x + s.X*(y+s.Y*(z+s.Z*(t+s.T*c))), nil
}

// Equal reports whether both shapes declare the same extents.
func (s Shape) Equal(o Shape) bool {
	return s == o
}

// String returns the shape in XxYxZxTxC notation.
func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%dx%dx%d", s.X, s.Y, s.Z, s.T, s.C)
}
