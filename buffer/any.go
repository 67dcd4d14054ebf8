package buffer

import "github.com/hupe1980/pixelgo/pixel"

// Any is the type-erased view of a Buffer[T] held by a VariantPixelBuffer.
//
// The interface is sealed: only Buffer instantiations over the catalogue can
// implement it, so a value of type Any is always exactly one member of the
// closed buffer set, never a foreign implementation.
type Any interface {
	PixelType() pixel.Type
	Shape() Shape
	Len() int

	// CloneAny deep-copies the buffer behind the erased view.
	CloneAny() Any

	// EqualAny compares against another erased buffer. It is false whenever
	// the concrete types differ; no cross-type comparison is attempted.
	EqualAny(o Any) bool

	sealed()
}

func (b *Buffer[T]) sealed() {}

// CloneAny implements Any.
func (b *Buffer[T]) CloneAny() Any {
	return b.Clone()
}

// EqualAny implements Any. Buffers of different concrete types are unequal by
// definition; matching types delegate to elementwise comparison.
func (b *Buffer[T]) EqualAny(o Any) bool {
	ob, ok := o.(*Buffer[T])
	if !ok {
		return false
	}
	return b.Equal(ob)
}
