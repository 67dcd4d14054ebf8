package pixelgo

import (
	"fmt"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
)

// VariantPixelBuffer owns exactly one concrete pixel buffer of one catalogue
// type, erased behind a discriminated value.
//
// There is no common polymorphic base across buffer types; the variant pairs
// the discriminant with a sealed erased view, and every generic operation
// dispatches on the discriminant through a single exhaustive table.
//
// The variant exclusively owns its buffer. Copying (Clone) duplicates all
// sample data; the active type changes only via Reset.
type VariantPixelBuffer struct {
	typ pixel.Type
	buf buffer.Any
}

// New allocates a zero-filled buffer of the requested catalogue type and
// shape. It fails with ErrInvalidShape if any extent is non-positive or the
// element count overflows, and with ErrUnknownPixelType for a discriminant
// outside the catalogue. On failure nothing is observably constructed.
func New(t pixel.Type, shape buffer.Shape) (*VariantPixelBuffer, error) {
	buf, err := newBuffer(t, shape)
	if err != nil {
		return nil, err
	}
	return &VariantPixelBuffer{typ: t, buf: buf}, nil
}

// newBuffer is the construction arm of the dispatch table: one case per
// catalogue member.
func newBuffer(t pixel.Type, shape buffer.Shape) (buffer.Any, error) {
	var (
		buf buffer.Any
		err error
	)
	switch t {
	case pixel.Int8:
		buf, err = buffer.New[int8](shape)
	case pixel.Int16:
		buf, err = buffer.New[int16](shape)
	case pixel.Int32:
		buf, err = buffer.New[int32](shape)
	case pixel.Int64:
		buf, err = buffer.New[int64](shape)
	case pixel.Uint8:
		buf, err = buffer.New[uint8](shape)
	case pixel.Uint16:
		buf, err = buffer.New[uint16](shape)
	case pixel.Uint32:
		buf, err = buffer.New[uint32](shape)
	case pixel.Uint64:
		buf, err = buffer.New[uint64](shape)
	case pixel.Float32:
		buf, err = buffer.New[float32](shape)
	case pixel.Float64:
		buf, err = buffer.New[float64](shape)
	case pixel.Complex64:
		buf, err = buffer.New[complex64](shape)
	case pixel.Complex128:
		buf, err = buffer.New[complex128](shape)
	case pixel.Bit:
		buf, err = buffer.New[bool](shape)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPixelType, t)
	}
	if err != nil {
		return nil, translateError(err)
	}
	return buf, nil
}

// PixelType returns the active discriminant.
func (v *VariantPixelBuffer) PixelType() pixel.Type {
	return v.typ
}

// Shape returns the declared extents of the active buffer.
func (v *VariantPixelBuffer) Shape() buffer.Shape {
	return v.buf.Shape()
}

// Len returns the total number of samples in the active buffer.
func (v *VariantPixelBuffer) Len() int {
	return v.buf.Len()
}

// Reset reconstructs the variant with a new type and shape. This is the only
// way the active type changes. If construction fails the prior buffer
// remains untouched.
func (v *VariantPixelBuffer) Reset(t pixel.Type, shape buffer.Shape) error {
	buf, err := newBuffer(t, shape)
	if err != nil {
		return err
	}
	v.typ = t
	v.buf = buf
	return nil
}

// Clone returns a deep copy of the variant and its sample data.
func (v *VariantPixelBuffer) Clone() *VariantPixelBuffer {
	return &VariantPixelBuffer{typ: v.typ, buf: v.buf.CloneAny()}
}

// Equal compares two variants. Operands with different discriminants are
// unequal unconditionally; no cross-type numeric comparison is attempted and
// no error is possible. Matching discriminants compare elementwise.
func (v *VariantPixelBuffer) Equal(o *VariantPixelBuffer) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.typ != o.typ {
		return false
	}
	if v.buf == nil || o.buf == nil {
		return false
	}
	return v.buf.EqualAny(o.buf)
}

// As returns the typed view of the active buffer if the discriminant matches
// T exactly; otherwise it fails with a TypeMismatchError. It never converts.
func As[T pixel.Sample](v *VariantPixelBuffer) (*buffer.Buffer[T], error) {
	want := pixel.TypeOf[T]()
	b, ok := v.buf.(*buffer.Buffer[T])
	if !ok || v.typ != want {
		return nil, &TypeMismatchError{Want: want, Got: v.typ}
	}
	return b, nil
}
