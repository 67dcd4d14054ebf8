package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Run("SliceMirrorsScalar", func(t *testing.T) {
		scalars := []Kind{
			KindBool, KindString,
			KindInt8, KindInt16, KindInt32, KindInt64,
			KindUint8, KindUint16, KindUint32, KindUint64,
			KindFloat32, KindFloat64,
		}
		for _, k := range scalars {
			assert.False(t, k.IsSlice(), k.String())
			assert.True(t, k.Slice().IsSlice(), k.String())
			assert.Equal(t, k, k.Slice().Elem(), k.String())
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		assert.False(t, KindInvalid.Valid())
		assert.Equal(t, "invalid", KindInvalid.String())
	})

	t.Run("Names", func(t *testing.T) {
		assert.Equal(t, "float64", KindFloat64.String())
		assert.Equal(t, "[]uint16", KindUint16Slice.String())
	})
}

func TestValueRoundTrip(t *testing.T) {
	t.Run("Scalars", func(t *testing.T) {
		v := Of(int16(-300))
		assert.Equal(t, KindInt16, v.Kind())

		x, ok := As[int16](v)
		require.True(t, ok)
		assert.Equal(t, int16(-300), x)

		// Exact-width discipline: no implicit widening.
		_, ok = As[int32](v)
		assert.False(t, ok)
		_, ok = As[uint16](v)
		assert.False(t, ok)
	})

	t.Run("String", func(t *testing.T) {
		v := Of("X1")
		s, ok := As[string](v)
		require.True(t, ok)
		assert.Equal(t, "X1", s)
	})

	t.Run("Bool", func(t *testing.T) {
		v := Of(true)
		b, ok := As[bool](v)
		require.True(t, ok)
		assert.True(t, b)
	})

	t.Run("Slice", func(t *testing.T) {
		src := []float64{1.0, 2.0, 3.0}
		v := SliceOf(src)
		assert.Equal(t, KindFloat64Slice, v.Kind())
		assert.Equal(t, 3, v.Len())

		xs, ok := AsSlice[float64](v)
		require.True(t, ok)
		assert.Equal(t, src, xs)

		// The value owns its elements.
		src[0] = 99
		xs, _ = AsSlice[float64](v)
		assert.Equal(t, 1.0, xs[0])

		_, ok = AsSlice[float32](v)
		assert.False(t, ok)
		_, ok = As[float64](v)
		assert.False(t, ok)
	})

	t.Run("ZeroValueIsInvalid", func(t *testing.T) {
		var v Value
		assert.Equal(t, KindInvalid, v.Kind())
	})
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Of(uint32(7)).Equal(Of(uint32(7))))
	assert.False(t, Of(uint32(7)).Equal(Of(uint32(8))))
	assert.False(t, Of(uint32(7)).Equal(Of(int32(7))), "different kinds are unequal")

	assert.True(t, SliceOf([]int8{1, 2}).Equal(SliceOf([]int8{1, 2})))
	assert.False(t, SliceOf([]int8{1, 2}).Equal(SliceOf([]int8{1, 3})))
	assert.False(t, SliceOf([]int8{1, 2}).Equal(SliceOf([]int8{1})))
}

func TestValueJSON(t *testing.T) {
	b, err := Of(3.5).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, "3.5", string(b))

	b, err = SliceOf([]uint8{1, 2}).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, "[1,2]", string(b))
}
