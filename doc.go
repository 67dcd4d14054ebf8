// Package pixelgo is the in-memory data model for scientific image file
// libraries: variant pixel buffers over a closed catalogue of sample types,
// and typed, insertion-ordered metadata maps.
//
// # Variant Pixel Buffers
//
// A VariantPixelBuffer owns exactly one concrete buffer of one catalogue
// type, chosen at construction time:
//
//	shape := buffer.Shape{X: 512, Y: 512, Z: 16, T: 1, C: 3}
//	v, err := pixelgo.New(pixel.Uint16, shape)
//
//	b, err := pixelgo.As[uint16](v) // typed view; TypeMismatch for any other type
//	err = b.SetAt(10, 20, 0, 0, 1, 4095)
//
// The active type changes only by explicit reconstruction (Reset), never by
// implicit coercion. Copying is deep; buffers are never shared.
//
// Comparing variants never fails: operands of different pixel types are
// simply unequal, operands of the same type compare elementwise.
//
// # Category Algorithms
//
// Generic per-sample processing is written once per category, not once per
// concrete type. An Algorithm supplies one branch for each of the four
// categories - integral, floating, complex floating and boolean - and
// Apply routes the active buffer to the right branch through a
// category-widened accessor:
//
//	type negate struct{ pixelgo.AlgorithmBase }
//
//	func (negate) Integral(a pixelgo.IntegralAccess) error {
//	    for i := 0; i < a.Len(); i++ {
//	        v, _ := a.At(i)
//	        _ = a.Set(i, -v) // saturates at the type's range
//	    }
//	    return nil
//	}
//
// Convert builds on the same machinery to produce a buffer of another
// catalogue type, saturating integer targets and rounding half away from
// zero.
//
// # Metadata
//
// The metadata package stores acquisition fields as a closed set of scalar
// and vector kinds behind an insertion-ordered map, with Flatten expanding
// vector entries to numbered scalar entries ("Gain #1", "Gain #2", ...) for
// exporters without native vector values. MarshalMetadata serializes a
// flattened map with a codec.
//
// # Plane I/O Surface
//
// Format readers and writers exchange raw byte planes with the model through
// the FormatReader and FormatWriter interfaces; ReadVariant and WriteVariant
// move whole buffers across that boundary, optionally decoding planes in
// parallel. SaveToWriter and NewFromReader snapshot a variant to
// self-describing, zstd-compressed bytes for caching and hand-off. Parsing
// of on-disk image formats stays outside this module.
package pixelgo
