package pixel

// The constraints below enumerate the exact Go types of the catalogue.
// They deliberately omit approximation (~) terms: the catalogue is closed,
// so named types based on these kinds are not samples.

// Signed constrains to the signed integer sample types.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Unsigned constrains to the unsigned integer sample types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Integer constrains to all integer sample types.
type Integer interface {
	Signed | Unsigned
}

// Float constrains to the floating point sample types.
type Float interface {
	float32 | float64
}

// Complex constrains to the complex floating point sample types.
type Complex interface {
	complex64 | complex128
}

// Numeric constrains to every numeric sample type.
type Numeric interface {
	Integer | Float | Complex
}

// Sample constrains to every sample type in the catalogue, including the
// packed bit type represented as bool.
type Sample interface {
	Numeric | bool
}

// TypeOf returns the catalogue discriminant for the Go sample type T.
func TypeOf[T Sample]() Type {
	var z T
	switch any(z).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	case bool:
		return Bit
	default:
		return Unknown
	}
}
