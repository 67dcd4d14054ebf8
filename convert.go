package pixelgo

import (
	"fmt"
	"time"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
)

// Convert returns a new variant of the requested catalogue type holding the
// converted samples of v. The source is never mutated.
//
// Conversion semantics by target category:
//   - integral: round half away from zero, then saturate at the type range
//   - floating: native narrowing (overflowing float32 targets become ±Inf)
//   - complex: the value becomes the real component, imaginary part zero
//   - bit: false for zero, true for any non-zero value
//
// Complex sources convert to real targets through their real component.
// Integer-to-integer conversion goes through int64 and is exact apart from
// uint64 values above math.MaxInt64, which saturate; conversions that cross
// categories widen through complex128, so 64-bit integer magnitudes beyond
// 2^53 round to the nearest representable float64.
func Convert(v *VariantPixelBuffer, to pixel.Type, opts ...Option) (*VariantPixelBuffer, error) {
	o := applyOptions(opts)

	start := time.Now()
	out, err := convert(v, to)
	o.metrics.RecordConvert(v.typ, to, time.Since(start), err)
	o.logger.LogConvert(v.typ, to, v.Len(), err)
	return out, err
}

func convert(v *VariantPixelBuffer, to pixel.Type) (*VariantPixelBuffer, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPixelType, to)
	}
	if to == v.typ {
		return v.Clone(), nil
	}

	out, err := New(to, v.Shape())
	if err != nil {
		return nil, err
	}

	if v.typ.Category() == pixel.Integral && to.Category() == pixel.Integral {
		if err := convertIntegral(v, out); err != nil {
			return nil, err
		}
		return out, nil
	}

	widened := make([]complex128, v.Len())
	if err := widenSamples(v, widened); err != nil {
		return nil, err
	}
	if err := narrowSamples(out, widened); err != nil {
		return nil, err
	}
	return out, nil
}

// convertIntegral copies between integer buffers through int64, which keeps
// full 64-bit precision off the float path.
func convertIntegral(src, dst *VariantPixelBuffer) error {
	widened := make([]int64, src.Len())

	in := integralReader(src)
	for i := range widened {
		v, err := in.At(i)
		if err != nil {
			return err
		}
		widened[i] = v
	}

	out := integralReader(dst)
	for i, v := range widened {
		if err := out.Set(i, v); err != nil {
			return err
		}
	}
	return nil
}

// integralReader builds the widened integer view for a buffer already known
// to be integral.
func integralReader(v *VariantPixelBuffer) IntegralAccess {
	switch v.typ {
	case pixel.Int8:
		return integralAccess[int8]{mustView[int8](v)}
	case pixel.Int16:
		return integralAccess[int16]{mustView[int16](v)}
	case pixel.Int32:
		return integralAccess[int32]{mustView[int32](v)}
	case pixel.Int64:
		return integralAccess[int64]{mustView[int64](v)}
	case pixel.Uint8:
		return integralAccess[uint8]{mustView[uint8](v)}
	case pixel.Uint16:
		return integralAccess[uint16]{mustView[uint16](v)}
	case pixel.Uint32:
		return integralAccess[uint32]{mustView[uint32](v)}
	case pixel.Uint64:
		return integralAccess[uint64]{mustView[uint64](v)}
	default:
		panic(fmt.Sprintf("integralReader: %s is not integral", v.typ))
	}
}

// widenSamples reads every sample of v into complex128. One case per
// catalogue member, each routed to its category's widening body.
func widenSamples(v *VariantPixelBuffer, dst []complex128) error {
	switch v.typ {
	case pixel.Int8:
		return widenInt(mustView[int8](v), dst)
	case pixel.Int16:
		return widenInt(mustView[int16](v), dst)
	case pixel.Int32:
		return widenInt(mustView[int32](v), dst)
	case pixel.Int64:
		return widenInt(mustView[int64](v), dst)
	case pixel.Uint8:
		return widenInt(mustView[uint8](v), dst)
	case pixel.Uint16:
		return widenInt(mustView[uint16](v), dst)
	case pixel.Uint32:
		return widenInt(mustView[uint32](v), dst)
	case pixel.Uint64:
		return widenInt(mustView[uint64](v), dst)
	case pixel.Float32:
		return widenFloat(mustView[float32](v), dst)
	case pixel.Float64:
		return widenFloat(mustView[float64](v), dst)
	case pixel.Complex64:
		return widenComplex(mustView[complex64](v), dst)
	case pixel.Complex128:
		return widenComplex(mustView[complex128](v), dst)
	case pixel.Bit:
		return widenBit(mustView[bool](v), dst)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPixelType, v.typ)
	}
}

func widenInt[T pixel.Integer](b *buffer.Buffer[T], dst []complex128) error {
	for i := range dst {
		v, err := b.Get(i)
		if err != nil {
			return translateError(err)
		}
		dst[i] = complex(float64(v), 0)
	}
	return nil
}

func widenFloat[T pixel.Float](b *buffer.Buffer[T], dst []complex128) error {
	for i := range dst {
		v, err := b.Get(i)
		if err != nil {
			return translateError(err)
		}
		dst[i] = complex(float64(v), 0)
	}
	return nil
}

func widenComplex[T pixel.Complex](b *buffer.Buffer[T], dst []complex128) error {
	for i := range dst {
		v, err := b.Get(i)
		if err != nil {
			return translateError(err)
		}
		dst[i] = complex128(v)
	}
	return nil
}

func widenBit(b *buffer.Buffer[bool], dst []complex128) error {
	for i := range dst {
		v, err := b.Get(i)
		if err != nil {
			return translateError(err)
		}
		if v {
			dst[i] = 1
		}
	}
	return nil
}

// narrowSamples stores widened samples into out with the target category's
// narrowing rule.
func narrowSamples(out *VariantPixelBuffer, src []complex128) error {
	switch out.typ {
	case pixel.Int8:
		return narrowInt(mustView[int8](out), src)
	case pixel.Int16:
		return narrowInt(mustView[int16](out), src)
	case pixel.Int32:
		return narrowInt(mustView[int32](out), src)
	case pixel.Int64:
		return narrowInt(mustView[int64](out), src)
	case pixel.Uint8:
		return narrowInt(mustView[uint8](out), src)
	case pixel.Uint16:
		return narrowInt(mustView[uint16](out), src)
	case pixel.Uint32:
		return narrowInt(mustView[uint32](out), src)
	case pixel.Uint64:
		return narrowInt(mustView[uint64](out), src)
	case pixel.Float32:
		return narrowFloat(mustView[float32](out), src)
	case pixel.Float64:
		return narrowFloat(mustView[float64](out), src)
	case pixel.Complex64:
		return narrowComplex(mustView[complex64](out), src)
	case pixel.Complex128:
		return narrowComplex(mustView[complex128](out), src)
	case pixel.Bit:
		return narrowBit(mustView[bool](out), src)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPixelType, out.typ)
	}
}

func narrowInt[T pixel.Integer](b *buffer.Buffer[T], src []complex128) error {
	for i, v := range src {
		if err := b.Set(i, pixel.RoundInt[T](real(v))); err != nil {
			return translateError(err)
		}
	}
	return nil
}

func narrowFloat[T pixel.Float](b *buffer.Buffer[T], src []complex128) error {
	for i, v := range src {
		if err := b.Set(i, T(real(v))); err != nil {
			return translateError(err)
		}
	}
	return nil
}

func narrowComplex[T pixel.Complex](b *buffer.Buffer[T], src []complex128) error {
	for i, v := range src {
		if err := b.Set(i, T(v)); err != nil {
			return translateError(err)
		}
	}
	return nil
}

func narrowBit(b *buffer.Buffer[bool], src []complex128) error {
	for i, v := range src {
		if err := b.Set(i, real(v) != 0 || imag(v) != 0); err != nil {
			return translateError(err)
		}
	}
	return nil
}
