package plane

import (
	"encoding/binary"
	"testing"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShape = buffer.Shape{X: 4, Y: 2, Z: 2, T: 1, C: 1}

func TestEncodedLen(t *testing.T) {
	assert.Equal(t, 10, EncodedLen(pixel.Uint8, 10))
	assert.Equal(t, 20, EncodedLen(pixel.Int16, 10))
	assert.Equal(t, 160, EncodedLen(pixel.Complex128, 10))
	assert.Equal(t, 2, EncodedLen(pixel.Bit, 10))
	assert.Equal(t, 1, EncodedLen(pixel.Bit, 8))
	assert.Equal(t, 2, EncodedLen(pixel.Bit, 9))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Run("Uint16BothOrders", func(t *testing.T) {
		for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
			src, err := buffer.New[uint16](testShape)
			require.NoError(t, err)
			for i := 0; i < src.Len(); i++ {
				require.NoError(t, src.Set(i, uint16(i*257)))
			}

			data, err := Encode(src, order)
			require.NoError(t, err)
			assert.Len(t, data, src.Len()*2)

			dst, err := buffer.New[uint16](testShape)
			require.NoError(t, err)
			require.NoError(t, Decode(data, order, dst))
			assert.True(t, src.Equal(dst))
		}
	})

	t.Run("EndiannessMatters", func(t *testing.T) {
		src, err := buffer.New[uint16](testShape)
		require.NoError(t, err)
		require.NoError(t, src.Set(0, 0x1234))

		le, err := Encode(src, binary.LittleEndian)
		require.NoError(t, err)
		be, err := Encode(src, binary.BigEndian)
		require.NoError(t, err)

		assert.Equal(t, []byte{0x34, 0x12}, le[:2])
		assert.Equal(t, []byte{0x12, 0x34}, be[:2])
	})

	t.Run("Complex", func(t *testing.T) {
		src, err := buffer.New[complex64](testShape)
		require.NoError(t, err)
		require.NoError(t, src.Set(3, complex(1.5, -2.5)))

		data, err := Encode(src, binary.LittleEndian)
		require.NoError(t, err)

		dst, err := buffer.New[complex64](testShape)
		require.NoError(t, err)
		require.NoError(t, Decode(data, binary.LittleEndian, dst))
		assert.True(t, src.Equal(dst))
	})

	t.Run("Float64", func(t *testing.T) {
		src, err := buffer.New[float64](testShape)
		require.NoError(t, err)
		src.Fill(3.14159)

		data, err := Encode(src, binary.BigEndian)
		require.NoError(t, err)

		dst, err := buffer.New[float64](testShape)
		require.NoError(t, err)
		require.NoError(t, Decode(data, binary.BigEndian, dst))
		assert.True(t, src.Equal(dst))
	})
}

func TestBitPacking(t *testing.T) {
	src, err := buffer.New[bool](testShape)
	require.NoError(t, err)
	// 16 samples -> 2 bytes.
	require.NoError(t, src.Set(0, true))
	require.NoError(t, src.Set(7, true))
	require.NoError(t, src.Set(8, true))

	data, err := Encode(src, binary.LittleEndian)
	require.NoError(t, err)
	require.Len(t, data, 2)

	// MSB-first: sample 0 is the high bit of byte 0.
	assert.Equal(t, byte(0b1000_0001), data[0])
	assert.Equal(t, byte(0b1000_0000), data[1])

	dst, err := buffer.New[bool](testShape)
	require.NoError(t, err)
	require.NoError(t, Decode(data, binary.LittleEndian, dst))
	assert.True(t, src.Equal(dst))
}

func TestRanges(t *testing.T) {
	src, err := buffer.New[int32](testShape)
	require.NoError(t, err)
	for i := 0; i < src.Len(); i++ {
		require.NoError(t, src.Set(i, int32(-i)))
	}

	t.Run("PlaneByPlane", func(t *testing.T) {
		dst, err := buffer.New[int32](testShape)
		require.NoError(t, err)

		planeLen := testShape.PlaneLen()
		for p := 0; p < testShape.Planes(); p++ {
			data, err := EncodeRange(src, p*planeLen, planeLen, binary.LittleEndian)
			require.NoError(t, err)
			require.NoError(t, DecodeRange(data, binary.LittleEndian, dst, p*planeLen, planeLen))
		}
		assert.True(t, src.Equal(dst))
	})

	t.Run("RangeOutOfBounds", func(t *testing.T) {
		_, err := EncodeRange(src, src.Len()-1, 2, binary.LittleEndian)
		var re *RangeError
		require.ErrorAs(t, err, &re)

		err = DecodeRange([]byte{0, 0, 0, 0}, binary.LittleEndian, src, -1, 1)
		require.ErrorAs(t, err, &re)
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		err := DecodeRange([]byte{1, 2, 3}, binary.LittleEndian, src, 0, 1)
		var se *SizeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 4, se.Expected)
		assert.Equal(t, 3, se.Actual)
	})
}
