// Package buffer implements the concrete five-dimensional pixel buffer
// underlying a VariantPixelBuffer.
//
// A Buffer[T] owns a contiguous sample array of exactly one catalogue type T
// together with its Shape. The storage length always equals the product of
// the declared extents; out-of-range access is rejected, never truncated.
//
// Samples are laid out in XYZTC order with X varying fastest, so one XY plane
// occupies a contiguous linear range. The packed bit type shares the same
// API but stores one bit per sample behind a bitset.
//
// Buffers have strict value semantics: Clone produces a full, independent
// copy and buffers are never shared. A buffer is safe for concurrent readers;
// writers require external mutual exclusion.
package buffer
