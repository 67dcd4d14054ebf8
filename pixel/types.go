package pixel

import "fmt"

// Type identifies one member of the closed sample type catalogue.
//
// The zero value is Unknown and is never a valid buffer type.
type Type uint8

const (
	// Unknown is the zero value; it is not part of the catalogue.
	Unknown Type = iota
	// Int8 is an 8-bit signed integer sample.
	Int8
	// Int16 is a 16-bit signed integer sample.
	Int16
	// Int32 is a 32-bit signed integer sample.
	Int32
	// Int64 is a 64-bit signed integer sample.
	Int64
	// Uint8 is an 8-bit unsigned integer sample.
	Uint8
	// Uint16 is a 16-bit unsigned integer sample.
	Uint16
	// Uint32 is a 32-bit unsigned integer sample.
	Uint32
	// Uint64 is a 64-bit unsigned integer sample.
	Uint64
	// Float32 is a 32-bit floating point sample.
	Float32
	// Float64 is a 64-bit floating point sample.
	Float64
	// Complex64 is a complex sample with 32-bit components.
	Complex64
	// Complex128 is a complex sample with 64-bit components.
	Complex128
	// Bit is a packed single-bit boolean sample.
	Bit
)

// Types returns the full catalogue in a stable order.
//
// The returned slice is freshly allocated; callers may modify it.
func Types() []Type {
	return []Type{
		Int8, Int16, Int32, Int64,
		Uint8, Uint16, Uint32, Uint64,
		Float32, Float64,
		Complex64, Complex128,
		Bit,
	}
}

// Valid reports whether t is a member of the catalogue.
func (t Type) Valid() bool {
	return t >= Int8 && t <= Bit
}

// String returns the canonical lower-case name of the type.
func (t Type) String() string {
	switch t {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	case Bit:
		return "bit"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseType returns the Type with the given canonical name.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if t.String() == s {
			return t, nil
		}
	}
	return Unknown, fmt.Errorf("unknown pixel type %q", s)
}

// Category returns the category t belongs to.
func (t Type) Category() Category {
	switch t {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return Integral
	case Float32, Float64:
		return Floating
	case Complex64, Complex128:
		return ComplexFloating
	case Bit:
		return Boolean
	default:
		return CategoryUnknown
	}
}

// Signed reports whether t is a signed integer type. Floating and complex
// types are signed by nature but report false here; Signed answers the
// integral-category question only.
func (t Type) Signed() bool {
	switch t {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// BitsPerSample returns the number of significant bits in one sample.
func (t Type) BitsPerSample() int {
	switch t {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64, Complex64:
		return 64
	case Complex128:
		return 128
	case Bit:
		return 1
	default:
		return 0
	}
}

// ByteSize returns the number of bytes one unpacked sample occupies on the
// wire. Bit samples are packed eight to a byte and report 0 here; plane
// encoding handles them separately.
func (t Type) ByteSize() int {
	if t == Bit {
		return 0
	}
	return t.BitsPerSample() / 8
}
