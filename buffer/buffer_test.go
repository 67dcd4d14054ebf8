package buffer

import (
	"testing"

	"github.com/hupe1980/pixelgo/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShape = Shape{X: 4, Y: 3, Z: 2, T: 1, C: 2}

func TestNew(t *testing.T) {
	t.Run("ZeroFilled", func(t *testing.T) {
		b, err := New[uint16](testShape)
		require.NoError(t, err)
		assert.Equal(t, pixel.Uint16, b.PixelType())
		assert.Equal(t, testShape, b.Shape())
		assert.Equal(t, testShape.Len(), b.Len())

		v, err := b.Get(0)
		require.NoError(t, err)
		assert.Zero(t, v)
	})

	t.Run("InvalidShape", func(t *testing.T) {
		_, err := New[float32](Shape{X: 0, Y: 1, Z: 1, T: 1, C: 1})
		var ise *InvalidShapeError
		require.ErrorAs(t, err, &ise)
	})

	t.Run("BitUsesPackedStorage", func(t *testing.T) {
		b, err := New[bool](testShape)
		require.NoError(t, err)
		assert.Equal(t, pixel.Bit, b.PixelType())
		_, packed := b.store.(*bitStorage)
		assert.True(t, packed)
	})
}

func TestBufferAccess(t *testing.T) {
	b, err := New[int32](testShape)
	require.NoError(t, err)

	t.Run("CoordinateRoundTrip", func(t *testing.T) {
		require.NoError(t, b.SetAt(3, 2, 1, 0, 1, -77))
		v, err := b.At(3, 2, 1, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(-77), v)
	})

	t.Run("LinearMatchesCoordinate", func(t *testing.T) {
		i, err := testShape.Index(3, 2, 1, 0, 1)
		require.NoError(t, err)
		v, err := b.Get(i)
		require.NoError(t, err)
		assert.Equal(t, int32(-77), v)
	})

	t.Run("OutOfRangeRejected", func(t *testing.T) {
		var oor *OutOfRangeError

		_, err := b.At(4, 0, 0, 0, 0)
		require.ErrorAs(t, err, &oor)

		err = b.SetAt(0, 3, 0, 0, 0, 1)
		require.ErrorAs(t, err, &oor)

		_, err = b.Get(b.Len())
		require.ErrorAs(t, err, &oor)

		err = b.Set(-1, 1)
		require.ErrorAs(t, err, &oor)

		// Rejected writes leave the buffer untouched.
		v, err := b.Get(0)
		require.NoError(t, err)
		assert.Zero(t, v)
	})
}

func TestBitBuffer(t *testing.T) {
	b, err := New[bool](testShape)
	require.NoError(t, err)

	require.NoError(t, b.Set(5, true))
	require.NoError(t, b.Set(6, true))
	require.NoError(t, b.Set(6, false))

	v, err := b.Get(5)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = b.Get(6)
	require.NoError(t, err)
	assert.False(t, v)

	b.Fill(true)
	for i := 0; i < b.Len(); i++ {
		v, err := b.Get(i)
		require.NoError(t, err)
		assert.True(t, v)
	}
}

func TestBufferEqual(t *testing.T) {
	t.Run("IdenticalContents", func(t *testing.T) {
		a, err := New[float64](testShape)
		require.NoError(t, err)
		b, err := New[float64](testShape)
		require.NoError(t, err)

		a.Fill(1.5)
		b.Fill(1.5)
		assert.True(t, a.Equal(b))

		require.NoError(t, b.Set(7, 2.5))
		assert.False(t, a.Equal(b))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		a, err := New[uint8](testShape)
		require.NoError(t, err)
		b, err := New[uint8](Shape{X: 4, Y: 3, Z: 2, T: 2, C: 1})
		require.NoError(t, err)
		assert.False(t, a.Equal(b))
	})

	t.Run("Nil", func(t *testing.T) {
		a, err := New[uint8](testShape)
		require.NoError(t, err)
		assert.False(t, a.Equal(nil))
	})

	t.Run("Bit", func(t *testing.T) {
		a, err := New[bool](testShape)
		require.NoError(t, err)
		b, err := New[bool](testShape)
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		require.NoError(t, a.Set(11, true))
		assert.False(t, a.Equal(b))
	})
}

func TestBufferClone(t *testing.T) {
	a, err := New[int16](testShape)
	require.NoError(t, err)
	a.Fill(42)

	c := a.Clone()
	assert.True(t, a.Equal(c))

	require.NoError(t, c.Set(0, -1))
	v, err := a.Get(0)
	require.NoError(t, err)
	assert.Equal(t, int16(42), v, "clone must not share storage")
}

func TestEqualAny(t *testing.T) {
	a, err := New[uint8](testShape)
	require.NoError(t, err)
	b, err := New[int8](testShape)
	require.NoError(t, err)

	// Different concrete types are unequal, never an error.
	assert.False(t, a.EqualAny(b))

	c := a.CloneAny()
	assert.True(t, a.EqualAny(c))
	assert.Equal(t, pixel.Uint8, c.PixelType())
}
