// Package pixel defines the closed catalogue of sample types supported by
// pixelgo and the category machinery shared by every generic operation.
//
// # Catalogue
//
// The catalogue is fixed: signed and unsigned integers of 8, 16, 32 and 64
// bits, 32- and 64-bit floating point, 32- and 64-bit complex floating point,
// and a packed single-bit boolean type. Each member is identified by a Type
// discriminant and corresponds to exactly one Go sample type:
//
//	pixel.Int8       int8          pixel.Uint8       uint8
//	pixel.Int16      int16         pixel.Uint16      uint16
//	pixel.Int32      int32         pixel.Uint32      uint32
//	pixel.Int64      int64         pixel.Uint64      uint64
//	pixel.Float32    float32       pixel.Complex64   complex64
//	pixel.Float64    float64       pixel.Complex128  complex128
//	pixel.Bit        bool
//
// # Categories
//
// Every catalogue member belongs to exactly one Category: Integral, Floating,
// ComplexFloating or Boolean. Algorithms that are uniform within a category
// (saturating clamps for integers, rounding for floats, magnitude for complex
// values, bit tests for booleans) are written once per category using the
// generic constraints in this package rather than once per concrete type.
//
// Adding a catalogue member means extending Type, TypeOf, the Sample
// constraint and every dispatch switch; the compiler and the exhaustiveness
// tests in this module flag each site that is missed.
package pixel
