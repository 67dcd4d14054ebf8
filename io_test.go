package pixelgo_test

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pixelgo"
	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
	"github.com/hupe1980/pixelgo/testutil"
)

// memFormat is an in-memory plane store implementing both FormatReader and
// FormatWriter, standing in for a real format codec.
type memFormat struct {
	typ    pixel.Type
	shape  buffer.Shape
	order  binary.ByteOrder
	mu     sync.Mutex
	planes map[int][]byte

	readErr error
}

func newMemFormat(t pixel.Type, shape buffer.Shape, order binary.ByteOrder) *memFormat {
	return &memFormat{
		typ:    t,
		shape:  shape,
		order:  order,
		planes: make(map[int][]byte),
	}
}

func (m *memFormat) PixelType() pixel.Type       { return m.typ }
func (m *memFormat) Shape() buffer.Shape         { return m.shape }
func (m *memFormat) ByteOrder() binary.ByteOrder { return m.order }

func (m *memFormat) ReadPlane(_ context.Context, index int) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.planes[index]
	if !ok {
		return nil, errors.New("no such plane")
	}
	return data, nil
}

func (m *memFormat) WritePlane(_ context.Context, index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.planes[index] = data
	return nil
}

func randomVariant(t *testing.T, pt pixel.Type, shape buffer.Shape, seed int64) *pixelgo.VariantPixelBuffer {
	t.Helper()

	v, err := pixelgo.New(pt, shape)
	require.NoError(t, err)

	rng := testutil.NewRNG(seed)
	switch pt {
	case pixel.Uint16:
		fillVariant[uint16](t, rng, v)
	case pixel.Int32:
		fillVariant[int32](t, rng, v)
	case pixel.Float64:
		fillVariant[float64](t, rng, v)
	case pixel.Complex64:
		fillVariant[complex64](t, rng, v)
	case pixel.Bit:
		fillVariant[bool](t, rng, v)
	default:
		t.Fatalf("randomVariant: unhandled type %s", pt)
	}
	return v
}

func fillVariant[T pixel.Sample](t *testing.T, rng *testutil.RNG, v *pixelgo.VariantPixelBuffer) {
	t.Helper()

	b, err := pixelgo.As[T](v)
	require.NoError(t, err)
	require.NoError(t, testutil.Fill(rng, b))
}

func TestReadWriteVariantRoundTrip(t *testing.T) {
	shape := buffer.Shape{X: 5, Y: 4, Z: 2, T: 3, C: 2}

	for _, pt := range []pixel.Type{pixel.Uint16, pixel.Int32, pixel.Float64, pixel.Complex64, pixel.Bit} {
		t.Run(pt.String(), func(t *testing.T) {
			v := randomVariant(t, pt, shape, 42)

			store := newMemFormat(pt, shape, binary.LittleEndian)
			require.NoError(t, pixelgo.WriteVariant(context.Background(), store, v))
			assert.Len(t, store.planes, shape.Planes())

			got, err := pixelgo.ReadVariant(context.Background(), store)
			require.NoError(t, err)
			assert.True(t, v.Equal(got))
		})
	}
}

func TestReadVariantParallelMatchesSequential(t *testing.T) {
	shape := buffer.Shape{X: 7, Y: 3, Z: 4, T: 2, C: 3}
	v := randomVariant(t, pixel.Uint16, shape, 7)

	store := newMemFormat(pixel.Uint16, shape, binary.BigEndian)
	require.NoError(t, pixelgo.WriteVariant(context.Background(), store, v, pixelgo.WithParallelism(4)))

	seq, err := pixelgo.ReadVariant(context.Background(), store)
	require.NoError(t, err)
	par, err := pixelgo.ReadVariant(context.Background(), store, pixelgo.WithParallelism(8))
	require.NoError(t, err)

	assert.True(t, seq.Equal(par))
	assert.True(t, v.Equal(par))
}

func TestReadVariantParallelBitPlanes(t *testing.T) {
	// 9 samples per plane, so adjacent bit planes share packed storage
	// words; run under -race to cover the serialized decode path.
	shape := buffer.Shape{X: 3, Y: 3, Z: 64, T: 2, C: 2}
	v := randomVariant(t, pixel.Bit, shape, 13)

	store := newMemFormat(pixel.Bit, shape, binary.LittleEndian)
	require.NoError(t, pixelgo.WriteVariant(context.Background(), store, v, pixelgo.WithParallelism(4)))

	seq, err := pixelgo.ReadVariant(context.Background(), store)
	require.NoError(t, err)
	par, err := pixelgo.ReadVariant(context.Background(), store, pixelgo.WithParallelism(8))
	require.NoError(t, err)

	assert.True(t, v.Equal(seq))
	assert.True(t, v.Equal(par))
}

func TestReadVariantPlaneFailure(t *testing.T) {
	shape := buffer.Shape{X: 2, Y: 2, Z: 2, T: 1, C: 1}
	v := randomVariant(t, pixel.Int32, shape, 3)

	store := newMemFormat(pixel.Int32, shape, binary.LittleEndian)
	require.NoError(t, pixelgo.WriteVariant(context.Background(), store, v))

	boom := errors.New("decode failed")
	store.readErr = boom

	_, err := pixelgo.ReadVariant(context.Background(), store, pixelgo.WithParallelism(2))
	assert.ErrorIs(t, err, boom)
}

func TestReadVariantShortPlane(t *testing.T) {
	shape := buffer.Shape{X: 4, Y: 4, Z: 1, T: 1, C: 1}
	v := randomVariant(t, pixel.Uint16, shape, 5)

	store := newMemFormat(pixel.Uint16, shape, binary.LittleEndian)
	require.NoError(t, pixelgo.WriteVariant(context.Background(), store, v))

	store.planes[0] = store.planes[0][:3]

	_, err := pixelgo.ReadVariant(context.Background(), store)
	assert.Error(t, err)
}

func TestWriteVariantRejectsMismatch(t *testing.T) {
	shape := buffer.Shape{X: 2, Y: 2, Z: 1, T: 1, C: 1}
	v := randomVariant(t, pixel.Uint16, shape, 1)

	wrongType := newMemFormat(pixel.Int32, shape, binary.LittleEndian)
	err := pixelgo.WriteVariant(context.Background(), wrongType, v)
	assert.ErrorIs(t, err, pixelgo.ErrTypeMismatch)

	wrongShape := newMemFormat(pixel.Uint16, buffer.Shape{X: 3, Y: 2, Z: 1, T: 1, C: 1}, binary.LittleEndian)
	err = pixelgo.WriteVariant(context.Background(), wrongShape, v)
	assert.ErrorIs(t, err, pixelgo.ErrInvalidShape)
}

func TestReadVariantMetrics(t *testing.T) {
	shape := buffer.Shape{X: 2, Y: 2, Z: 3, T: 1, C: 1}
	v := randomVariant(t, pixel.Float64, shape, 11)

	store := newMemFormat(pixel.Float64, shape, binary.LittleEndian)
	mc := &pixelgo.BasicMetricsCollector{}
	require.NoError(t, pixelgo.WriteVariant(context.Background(), store, v, pixelgo.WithMetrics(mc)))
	assert.Equal(t, int64(shape.Planes()), mc.PlaneWriteCount.Load())

	_, err := pixelgo.ReadVariant(context.Background(), store, pixelgo.WithMetrics(mc))
	require.NoError(t, err)
	assert.Equal(t, int64(shape.Planes()), mc.PlaneReadCount.Load())
	assert.Equal(t, int64(0), mc.PlaneReadErrors.Load())
}
