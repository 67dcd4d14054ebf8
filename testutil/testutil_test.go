package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pixelgo/buffer"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestRNGReset(t *testing.T) {
	r := NewRNG(7)
	first := r.Uint64()

	r.Reset()
	assert.Equal(t, first, r.Uint64())
	assert.Equal(t, int64(7), r.Seed())
}

func TestSamplesReproducible(t *testing.T) {
	a := Samples[uint16](NewRNG(1), 64)
	b := Samples[uint16](NewRNG(1), 64)

	require.Len(t, a, 64)
	assert.Equal(t, a, b)
}

func TestFill(t *testing.T) {
	shape := buffer.Shape{X: 8, Y: 8, Z: 1, T: 1, C: 1}

	b1, err := buffer.New[float32](shape)
	require.NoError(t, err)
	b2, err := buffer.New[float32](shape)
	require.NoError(t, err)

	require.NoError(t, Fill(NewRNG(3), b1))
	require.NoError(t, Fill(NewRNG(3), b2))

	assert.True(t, b1.Equal(b2))

	// A fresh buffer is all zero, a filled one essentially never is.
	zero, err := buffer.New[float32](shape)
	require.NoError(t, err)
	assert.False(t, b1.Equal(zero))
}

func TestFillBit(t *testing.T) {
	shape := buffer.Shape{X: 16, Y: 16, Z: 1, T: 1, C: 1}

	b, err := buffer.New[bool](shape)
	require.NoError(t, err)
	require.NoError(t, Fill(NewRNG(9), b))

	trues := 0
	for i := 0; i < b.Len(); i++ {
		v, err := b.Get(i)
		require.NoError(t, err)
		if v {
			trues++
		}
	}
	assert.Greater(t, trues, 0)
	assert.Less(t, trues, b.Len())
}
