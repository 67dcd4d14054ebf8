package pixelgo

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
)

// ErrUnsupportedCategory is returned by algorithm branches that deliberately
// reject a category (see AlgorithmBase).
var ErrUnsupportedCategory = errors.New("category not supported by algorithm")

// Algorithm is a per-category operation over a variant's samples.
//
// An implementation supplies one branch per category; the interface grows a
// method whenever a category is added, so every algorithm in existence fails
// to compile until it handles the new category. Branches receive a
// category-widened accessor rather than the concrete buffer, which is how an
// algorithm body is written once per category instead of once per width.
type Algorithm interface {
	// Integral handles the eight integer widths.
	Integral(a IntegralAccess) error
	// Floating handles float32 and float64.
	Floating(a FloatingAccess) error
	// ComplexFloating handles complex64 and complex128.
	ComplexFloating(a ComplexAccess) error
	// Boolean handles the packed bit type.
	Boolean(a BooleanAccess) error
}

// AlgorithmBase rejects every category with ErrUnsupportedCategory. Embed it
// to write algorithms that only operate on some categories; the rejection is
// explicit, not silent.
type AlgorithmBase struct{}

// Integral implements Algorithm.
func (AlgorithmBase) Integral(IntegralAccess) error { return ErrUnsupportedCategory }

// Floating implements Algorithm.
func (AlgorithmBase) Floating(FloatingAccess) error { return ErrUnsupportedCategory }

// ComplexFloating implements Algorithm.
func (AlgorithmBase) ComplexFloating(ComplexAccess) error { return ErrUnsupportedCategory }

// Boolean implements Algorithm.
func (AlgorithmBase) Boolean(BooleanAccess) error { return ErrUnsupportedCategory }

// IntegralAccess is the widened view of an integer buffer.
//
// Samples read as int64; uint64 samples above math.MaxInt64 saturate on
// read (use As for exact-width access when that matters). Writes clamp to
// the concrete type's range instead of wrapping.
type IntegralAccess interface {
	PixelType() pixel.Type
	Len() int
	Signed() bool
	At(i int) (int64, error)
	Set(i int, v int64) error
}

// FloatingAccess is the widened view of a floating point buffer. float32
// writes narrow with native float conversion.
type FloatingAccess interface {
	PixelType() pixel.Type
	Len() int
	At(i int) (float64, error)
	Set(i int, v float64) error
}

// ComplexAccess is the widened view of a complex buffer.
type ComplexAccess interface {
	PixelType() pixel.Type
	Len() int
	At(i int) (complex128, error)
	Set(i int, v complex128) error
}

// BooleanAccess is the view of a packed bit buffer.
type BooleanAccess interface {
	PixelType() pixel.Type
	Len() int
	At(i int) (bool, error)
	Set(i int, v bool) error
}

// Apply dispatches op to the branch for the active buffer's category. This
// is the application arm of the dispatch table: one case per catalogue
// member, each routed to exactly one category.
func Apply(v *VariantPixelBuffer, op Algorithm) error {
	switch v.typ {
	case pixel.Int8:
		return op.Integral(integralAccess[int8]{mustView[int8](v)})
	case pixel.Int16:
		return op.Integral(integralAccess[int16]{mustView[int16](v)})
	case pixel.Int32:
		return op.Integral(integralAccess[int32]{mustView[int32](v)})
	case pixel.Int64:
		return op.Integral(integralAccess[int64]{mustView[int64](v)})
	case pixel.Uint8:
		return op.Integral(integralAccess[uint8]{mustView[uint8](v)})
	case pixel.Uint16:
		return op.Integral(integralAccess[uint16]{mustView[uint16](v)})
	case pixel.Uint32:
		return op.Integral(integralAccess[uint32]{mustView[uint32](v)})
	case pixel.Uint64:
		return op.Integral(integralAccess[uint64]{mustView[uint64](v)})
	case pixel.Float32:
		return op.Floating(floatingAccess[float32]{mustView[float32](v)})
	case pixel.Float64:
		return op.Floating(floatingAccess[float64]{mustView[float64](v)})
	case pixel.Complex64:
		return op.ComplexFloating(complexAccess[complex64]{mustView[complex64](v)})
	case pixel.Complex128:
		return op.ComplexFloating(complexAccess[complex128]{mustView[complex128](v)})
	case pixel.Bit:
		return op.Boolean(booleanAccess{mustView[bool](v)})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPixelType, v.typ)
	}
}

// mustView fetches the typed buffer after the dispatch switch has already
// established the discriminant.
func mustView[T pixel.Sample](v *VariantPixelBuffer) *buffer.Buffer[T] {
	b, err := As[T](v)
	if err != nil {
		panic(err) // unreachable: the dispatch table matched the discriminant
	}
	return b
}

type integralAccess[T pixel.Integer] struct {
	buf *buffer.Buffer[T]
}

func (a integralAccess[T]) PixelType() pixel.Type { return a.buf.PixelType() }
func (a integralAccess[T]) Len() int              { return a.buf.Len() }
func (a integralAccess[T]) Signed() bool          { return a.buf.PixelType().Signed() }

func (a integralAccess[T]) At(i int) (int64, error) {
	v, err := a.buf.Get(i)
	if err != nil {
		return 0, translateError(err)
	}
	if u, ok := any(v).(uint64); ok && u > math.MaxInt64 {
		return math.MaxInt64, nil
	}
	return int64(v), nil
}

func (a integralAccess[T]) Set(i int, v int64) error {
	return translateError(a.buf.Set(i, pixel.ClampInt[T](v)))
}

type floatingAccess[T pixel.Float] struct {
	buf *buffer.Buffer[T]
}

func (a floatingAccess[T]) PixelType() pixel.Type { return a.buf.PixelType() }
func (a floatingAccess[T]) Len() int              { return a.buf.Len() }

func (a floatingAccess[T]) At(i int) (float64, error) {
	v, err := a.buf.Get(i)
	if err != nil {
		return 0, translateError(err)
	}
	return float64(v), nil
}

func (a floatingAccess[T]) Set(i int, v float64) error {
	return translateError(a.buf.Set(i, T(v)))
}

type complexAccess[T pixel.Complex] struct {
	buf *buffer.Buffer[T]
}

func (a complexAccess[T]) PixelType() pixel.Type { return a.buf.PixelType() }
func (a complexAccess[T]) Len() int              { return a.buf.Len() }

func (a complexAccess[T]) At(i int) (complex128, error) {
	v, err := a.buf.Get(i)
	if err != nil {
		return 0, translateError(err)
	}
	return complex128(v), nil
}

func (a complexAccess[T]) Set(i int, v complex128) error {
	return translateError(a.buf.Set(i, T(v)))
}

type booleanAccess struct {
	buf *buffer.Buffer[bool]
}

func (a booleanAccess) PixelType() pixel.Type { return a.buf.PixelType() }
func (a booleanAccess) Len() int              { return a.buf.Len() }

func (a booleanAccess) At(i int) (bool, error) {
	v, err := a.buf.Get(i)
	if err != nil {
		return false, translateError(err)
	}
	return v, nil
}

func (a booleanAccess) Set(i int, v bool) error {
	return translateError(a.buf.Set(i, v))
}
