// Package plane converts between buffer samples and the raw byte planes
// exchanged with format readers and writers.
//
// Encoding is explicit about byte order and performs no numeric conversion:
// a plane of uint16 samples is exactly two bytes per sample in the requested
// order. Bit samples are packed eight to a byte, most significant bit first,
// with the final byte zero-padded.
//
// Range variants operate on a linear sub-range of a buffer, so the XY planes
// of a five-dimensional buffer can be produced and consumed independently
// (one XY plane is always a contiguous linear range in XYZTC storage order).
package plane
