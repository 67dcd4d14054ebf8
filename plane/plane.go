package plane

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
)

// RangeError indicates a sample range outside the buffer's extent.
type RangeError struct {
	Off, N, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("plane range [%d,%d) outside buffer of %d samples", e.Off, e.Off+e.N, e.Len)
}

// SizeError indicates encoded data whose length does not match the sample
// range it is decoded into.
type SizeError struct {
	Expected, Actual int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("encoded plane is %d bytes, expected %d", e.Actual, e.Expected)
}

// EncodedLen returns the number of bytes n samples of type t occupy on the
// wire. Bit samples pack eight to a byte.
func EncodedLen(t pixel.Type, n int) int {
	if t == pixel.Bit {
		return (n + 7) / 8
	}
	return n * t.ByteSize()
}

// Encode serializes the entire buffer in the given byte order.
func Encode[T pixel.Sample](b *buffer.Buffer[T], order binary.ByteOrder) ([]byte, error) {
	return EncodeRange(b, 0, b.Len(), order)
}

// EncodeRange serializes the n samples starting at linear offset off.
func EncodeRange[T pixel.Sample](b *buffer.Buffer[T], off, n int, order binary.ByteOrder) ([]byte, error) {
	if off < 0 || n < 0 || off+n > b.Len() {
		return nil, &RangeError{Off: off, N: n, Len: b.Len()}
	}
	t := pixel.TypeOf[T]()
	out := make([]byte, EncodedLen(t, n))
	for i := 0; i < n; i++ {
		v, err := b.Get(off + i)
		if err != nil {
			return nil, err
		}
		putSample(out, i, any(v), order)
	}
	return out, nil
}

// Decode deserializes data into the entire buffer in the given byte order.
func Decode[T pixel.Sample](data []byte, order binary.ByteOrder, b *buffer.Buffer[T]) error {
	return DecodeRange(data, order, b, 0, b.Len())
}

// DecodeRange deserializes data into the n samples starting at linear offset
// off. The data length must match the encoded length of the range exactly.
func DecodeRange[T pixel.Sample](data []byte, order binary.ByteOrder, b *buffer.Buffer[T], off, n int) error {
	if off < 0 || n < 0 || off+n > b.Len() {
		return &RangeError{Off: off, N: n, Len: b.Len()}
	}
	t := pixel.TypeOf[T]()
	if want := EncodedLen(t, n); len(data) != want {
		return &SizeError{Expected: want, Actual: len(data)}
	}
	for i := 0; i < n; i++ {
		v := takeSample(data, i, t, order)
		if err := b.Set(off+i, v.(T)); err != nil {
			return err
		}
	}
	return nil
}

// putSample writes sample i of the erased value v into dst.
func putSample(dst []byte, i int, v any, order binary.ByteOrder) {
	switch x := v.(type) {
	case int8:
		dst[i] = byte(x)
	case uint8:
		dst[i] = x
	case int16:
		order.PutUint16(dst[i*2:], uint16(x))
	case uint16:
		order.PutUint16(dst[i*2:], x)
	case int32:
		order.PutUint32(dst[i*4:], uint32(x))
	case uint32:
		order.PutUint32(dst[i*4:], x)
	case int64:
		order.PutUint64(dst[i*8:], uint64(x))
	case uint64:
		order.PutUint64(dst[i*8:], x)
	case float32:
		order.PutUint32(dst[i*4:], math.Float32bits(x))
	case float64:
		order.PutUint64(dst[i*8:], math.Float64bits(x))
	case complex64:
		order.PutUint32(dst[i*8:], math.Float32bits(real(x)))
		order.PutUint32(dst[i*8+4:], math.Float32bits(imag(x)))
	case complex128:
		order.PutUint64(dst[i*16:], math.Float64bits(real(x)))
		order.PutUint64(dst[i*16+8:], math.Float64bits(imag(x)))
	case bool:
		if x {
			dst[i/8] |= 1 << (7 - uint(i)%8)
		}
	}
}

// takeSample reads sample i of type t from data, returning the exact sample
// type behind an interface.
func takeSample(data []byte, i int, t pixel.Type, order binary.ByteOrder) any {
	switch t {
	case pixel.Int8:
		return int8(data[i])
	case pixel.Uint8:
		return data[i]
	case pixel.Int16:
		return int16(order.Uint16(data[i*2:]))
	case pixel.Uint16:
		return order.Uint16(data[i*2:])
	case pixel.Int32:
		return int32(order.Uint32(data[i*4:]))
	case pixel.Uint32:
		return order.Uint32(data[i*4:])
	case pixel.Int64:
		return int64(order.Uint64(data[i*8:]))
	case pixel.Uint64:
		return order.Uint64(data[i*8:])
	case pixel.Float32:
		return math.Float32frombits(order.Uint32(data[i*4:]))
	case pixel.Float64:
		return math.Float64frombits(order.Uint64(data[i*8:]))
	case pixel.Complex64:
		re := math.Float32frombits(order.Uint32(data[i*8:]))
		im := math.Float32frombits(order.Uint32(data[i*8+4:]))
		return complex(re, im)
	case pixel.Complex128:
		re := math.Float64frombits(order.Uint64(data[i*16:]))
		im := math.Float64frombits(order.Uint64(data[i*16+8:]))
		return complex(re, im)
	case pixel.Bit:
		return data[i/8]&(1<<(7-uint(i)%8)) != 0
	default:
		return nil
	}
}
