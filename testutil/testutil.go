package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()&1 == 1
}

// Sample returns one random value of the catalogue type T.
//
// Integer types draw from their full range, floats from [-1, 1), complex
// types from the [-1, 1) square, bools with equal probability. The sequence
// is reproducible per seed.
func Sample[T pixel.Sample](r *RNG) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sampleLocked[T](r)
}

func sampleLocked[T pixel.Sample](r *RNG) T {
	var z T
	switch p := any(&z).(type) {
	case *int8:
		*p = int8(r.rand.Uint64())
	case *int16:
		*p = int16(r.rand.Uint64())
	case *int32:
		*p = int32(r.rand.Uint64())
	case *int64:
		*p = int64(r.rand.Uint64())
	case *uint8:
		*p = uint8(r.rand.Uint64())
	case *uint16:
		*p = uint16(r.rand.Uint64())
	case *uint32:
		*p = uint32(r.rand.Uint64())
	case *uint64:
		*p = r.rand.Uint64()
	case *float32:
		*p = r.rand.Float32()*2 - 1
	case *float64:
		*p = r.rand.Float64()*2 - 1
	case *complex64:
		*p = complex(r.rand.Float32()*2-1, r.rand.Float32()*2-1)
	case *complex128:
		*p = complex(r.rand.Float64()*2-1, r.rand.Float64()*2-1)
	case *bool:
		*p = r.rand.Uint64()&1 == 1
	}
	return z
}

// Fill randomizes every sample of b. Locks only once per call (preferred
// over calling Sample in a loop).
func Fill[T pixel.Sample](r *RNG, b *buffer.Buffer[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < b.Len(); i++ {
		if err := b.Set(i, sampleLocked[T](r)); err != nil {
			return err
		}
	}
	return nil
}

// Samples returns n random values of the catalogue type T in one draw.
func Samples[T pixel.Sample](r *RNG, n int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, n)
	for i := range out {
		out[i] = sampleLocked[T](r)
	}
	return out
}
