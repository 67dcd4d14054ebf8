package metadata

// Kind identifies the concrete type stored in a Value.
//
// The catalogue is closed: one kind per scalar type plus one slice kind per
// scalar type. Slice kinds mirror scalar kinds in declaration order so the
// two halves convert by a fixed offset.
type Kind uint8

const (
	// KindInvalid represents the zero Value; it is never stored in a Map.
	KindInvalid Kind = iota

	// KindBool represents a boolean value.
	KindBool
	// KindString represents a string value.
	KindString
	// KindInt8 represents an 8-bit signed integer value.
	KindInt8
	// KindInt16 represents a 16-bit signed integer value.
	KindInt16
	// KindInt32 represents a 32-bit signed integer value.
	KindInt32
	// KindInt64 represents a 64-bit signed integer value.
	KindInt64
	// KindUint8 represents an 8-bit unsigned integer value.
	KindUint8
	// KindUint16 represents a 16-bit unsigned integer value.
	KindUint16
	// KindUint32 represents a 32-bit unsigned integer value.
	KindUint32
	// KindUint64 represents a 64-bit unsigned integer value.
	KindUint64
	// KindFloat32 represents a 32-bit floating point value.
	KindFloat32
	// KindFloat64 represents a 64-bit floating point value.
	KindFloat64

	// KindBoolSlice represents an ordered sequence of booleans.
	KindBoolSlice
	// KindStringSlice represents an ordered sequence of strings.
	KindStringSlice
	// KindInt8Slice represents an ordered sequence of 8-bit signed integers.
	KindInt8Slice
	// KindInt16Slice represents an ordered sequence of 16-bit signed integers.
	KindInt16Slice
	// KindInt32Slice represents an ordered sequence of 32-bit signed integers.
	KindInt32Slice
	// KindInt64Slice represents an ordered sequence of 64-bit signed integers.
	KindInt64Slice
	// KindUint8Slice represents an ordered sequence of 8-bit unsigned integers.
	KindUint8Slice
	// KindUint16Slice represents an ordered sequence of 16-bit unsigned integers.
	KindUint16Slice
	// KindUint32Slice represents an ordered sequence of 32-bit unsigned integers.
	KindUint32Slice
	// KindUint64Slice represents an ordered sequence of 64-bit unsigned integers.
	KindUint64Slice
	// KindFloat32Slice represents an ordered sequence of 32-bit floats.
	KindFloat32Slice
	// KindFloat64Slice represents an ordered sequence of 64-bit floats.
	KindFloat64Slice
)

// sliceOffset converts between a scalar kind and its slice counterpart.
const sliceOffset = KindBoolSlice - KindBool

// Valid reports whether k is a member of the catalogue.
func (k Kind) Valid() bool {
	return k >= KindBool && k <= KindFloat64Slice
}

// IsSlice reports whether k is one of the slice kinds.
func (k Kind) IsSlice() bool {
	return k >= KindBoolSlice && k <= KindFloat64Slice
}

// Elem returns the scalar kind underlying a slice kind. For scalar kinds it
// returns the kind unchanged.
func (k Kind) Elem() Kind {
	if k.IsSlice() {
		return k - sliceOffset
	}
	return k
}

// Slice returns the slice kind whose elements are k. For slice kinds it
// returns the kind unchanged.
func (k Kind) Slice() Kind {
	if k.Valid() && !k.IsSlice() {
		return k + sliceOffset
	}
	return k
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k.IsSlice() {
		return "[]" + k.Elem().String()
	}
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// Scalar constrains to the exact Go types of the scalar value catalogue.
type Scalar interface {
	bool | string |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// KindOf returns the scalar kind for the Go type T.
func KindOf[T Scalar]() Kind {
	var z T
	switch any(z).(type) {
	case bool:
		return KindBool
	case string:
		return KindString
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}
