// Package testutil provides testing utilities for pixelgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator and helpers
// for filling pixel buffers of any catalogue type with reproducible
// random samples.
//
// # Random Sample Generation
//
//	rng := testutil.NewRNG(seed)
//	b, _ := buffer.New[uint16](shape)
//	testutil.Fill(rng, b) // every sample randomized, reproducible per seed
package testutil
