package buffer

import "github.com/hupe1980/pixelgo/pixel"

// storage abstracts the backing sample array so numeric types can share a
// plain slice while the bit type packs one bit per sample.
type storage[T pixel.Sample] interface {
	len() int
	at(i int) T
	put(i int, v T)
	fill(v T)
	equal(o storage[T]) bool
	clone() storage[T]
}

type sliceStorage[T pixel.Sample] struct {
	data []T
}

func (s *sliceStorage[T]) len() int       { return len(s.data) }
func (s *sliceStorage[T]) at(i int) T     { return s.data[i] }
func (s *sliceStorage[T]) put(i int, v T) { s.data[i] = v }

func (s *sliceStorage[T]) fill(v T) {
	for i := range s.data {
		s.data[i] = v
	}
}

func (s *sliceStorage[T]) equal(o storage[T]) bool {
	if s.len() != o.len() {
		return false
	}
	if os, ok := o.(*sliceStorage[T]); ok {
		for i, v := range s.data {
			if v != os.data[i] {
				return false
			}
		}
		return true
	}
	for i, v := range s.data {
		if v != o.at(i) {
			return false
		}
	}
	return true
}

func (s *sliceStorage[T]) clone() storage[T] {
	data := make([]T, len(s.data))
	copy(data, s.data)
	return &sliceStorage[T]{data: data}
}

// Buffer is a fixed-size five-dimensional sample array of exactly one
// catalogue type T. The storage length always equals Shape().Len().
type Buffer[T pixel.Sample] struct {
	shape Shape
	store storage[T]
}

// New allocates a zero-filled buffer of the given shape. The bit sample type
// (bool) is packed one bit per sample; all other types use one slice element
// per sample.
func New[T pixel.Sample](shape Shape) (*Buffer[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.Len()
	var store storage[T]
	var z T
	if _, isBit := any(z).(bool); isBit {
		store = any(newBitStorage(n)).(storage[T])
	} else {
		store = &sliceStorage[T]{data: make([]T, n)}
	}
	return &Buffer[T]{shape: shape, store: store}, nil
}

// PixelType returns the catalogue discriminant of T.
func (b *Buffer[T]) PixelType() pixel.Type {
	return pixel.TypeOf[T]()
}

// Shape returns the declared extents.
func (b *Buffer[T]) Shape() Shape {
	return b.shape
}

// Len returns the total number of samples.
func (b *Buffer[T]) Len() int {
	return b.store.len()
}

// At returns the sample at the given coordinate.
func (b *Buffer[T]) At(x, y, z, t, c int) (T, error) {
	i, err := b.shape.Index(x, y, z, t, c)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.store.at(i), nil
}

// SetAt stores a sample at the given coordinate.
func (b *Buffer[T]) SetAt(x, y, z, t, c int, v T) error {
	i, err := b.shape.Index(x, y, z, t, c)
	if err != nil {
		return err
	}
	b.store.put(i, v)
	return nil
}

// Get returns the sample at the linear index i in XYZTC storage order.
func (b *Buffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= b.store.len() {
		var zero T
		return zero, &OutOfRangeError{Axis: "linear", Index: i, Extent: b.store.len()}
	}
	return b.store.at(i), nil
}

// Set stores a sample at the linear index i in XYZTC storage order.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.store.len() {
		return &OutOfRangeError{Axis: "linear", Index: i, Extent: b.store.len()}
	}
	b.store.put(i, v)
	return nil
}

// Fill assigns v to every sample.
func (b *Buffer[T]) Fill(v T) {
	b.store.fill(v)
}

// Clone returns a deep copy. The copy shares no storage with the original.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return &Buffer[T]{shape: b.shape, store: b.store.clone()}
}

// Equal reports whether both buffers are non-nil, declare the same shape and
// hold elementwise identical samples.
func (b *Buffer[T]) Equal(o *Buffer[T]) bool {
	if b == nil || o == nil {
		return false
	}
	if !b.shape.Equal(o.shape) {
		return false
	}
	return b.store.equal(o.store)
}
