package metadata

import "encoding/json"

// Value is a tagged union over the closed metadata value catalogue.
//
// The discriminant is fixed at construction; there is no implicit coercion
// between kinds. The zero Value has KindInvalid and cannot be stored.
type Value struct {
	kind Kind
	b    bool
	s    string
	i64  int64
	u64  uint64
	f64  float64
	a    []Value
}

// Kind returns the discriminant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Of builds a scalar Value from any member of the scalar catalogue.
func Of[T Scalar](x T) Value {
	switch s := any(x).(type) {
	case bool:
		return Value{kind: KindBool, b: s}
	case string:
		return Value{kind: KindString, s: s}
	case int8:
		return Value{kind: KindInt8, i64: int64(s)}
	case int16:
		return Value{kind: KindInt16, i64: int64(s)}
	case int32:
		return Value{kind: KindInt32, i64: int64(s)}
	case int64:
		return Value{kind: KindInt64, i64: s}
	case uint8:
		return Value{kind: KindUint8, u64: uint64(s)}
	case uint16:
		return Value{kind: KindUint16, u64: uint64(s)}
	case uint32:
		return Value{kind: KindUint32, u64: uint64(s)}
	case uint64:
		return Value{kind: KindUint64, u64: s}
	case float32:
		return Value{kind: KindFloat32, f64: float64(s)}
	case float64:
		return Value{kind: KindFloat64, f64: s}
	default:
		return Value{}
	}
}

// SliceOf builds a vector Value from a slice of any scalar catalogue type.
// The input slice is copied; the Value shares no storage with it.
func SliceOf[T Scalar](xs []T) Value {
	elems := make([]Value, len(xs))
	for i, x := range xs {
		elems[i] = Of(x)
	}
	return Value{kind: KindOf[T]().Slice(), a: elems}
}

// As extracts the scalar payload if the discriminant matches T exactly.
// No numeric conversion is performed: an int16 value is not extractable as
// int32.
func As[T Scalar](v Value) (T, bool) {
	var z T
	if v.kind != KindOf[T]() {
		return z, false
	}
	switch p := any(&z).(type) {
	case *bool:
		*p = v.b
	case *string:
		*p = v.s
	case *int8:
		*p = int8(v.i64)
	case *int16:
		*p = int16(v.i64)
	case *int32:
		*p = int32(v.i64)
	case *int64:
		*p = v.i64
	case *uint8:
		*p = uint8(v.u64)
	case *uint16:
		*p = uint16(v.u64)
	case *uint32:
		*p = uint32(v.u64)
	case *uint64:
		*p = v.u64
	case *float32:
		*p = float32(v.f64)
	case *float64:
		*p = v.f64
	}
	return z, true
}

// AsSlice extracts the vector payload if the discriminant is exactly the
// slice kind of T.
func AsSlice[T Scalar](v Value) ([]T, bool) {
	if v.kind != KindOf[T]().Slice() {
		return nil, false
	}
	out := make([]T, len(v.a))
	for i, e := range v.a {
		x, ok := As[T](e)
		if !ok {
			return nil, false
		}
		out[i] = x
	}
	return out, true
}

// Len returns the element count of a vector value and 1 for scalars.
func (v Value) Len() int {
	if v.kind.IsSlice() {
		return len(v.a)
	}
	return 1
}

// Elems returns the scalar elements of a vector value in index order, or nil
// for scalars. The returned slice is a copy.
func (v Value) Elems() []Value {
	if !v.kind.IsSlice() {
		return nil
	}
	out := make([]Value, len(v.a))
	copy(out, v.a)
	return out
}

// Equal reports whether both values hold the same kind and payload.
// Values of different kinds are unequal, never an error.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind.IsSlice() {
		if len(v.a) != len(o.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(o.a[i]) {
				return false
			}
		}
		return true
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return v.i64 == o.i64
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return v.u64 == o.u64
	case KindFloat32, KindFloat64:
		return v.f64 == o.f64
	default:
		return false
	}
}

// clone deep-copies the value. Scalars copy by value; vectors duplicate the
// element slice.
func (v Value) clone() Value {
	if !v.kind.IsSlice() || len(v.a) == 0 {
		return v
	}
	a := make([]Value, len(v.a))
	copy(a, v.a)
	v.a = a
	return v
}

// native returns the Go-native representation used for JSON export.
func (v Value) native() any {
	if v.kind.IsSlice() {
		out := make([]any, len(v.a))
		for i, e := range v.a {
			out[i] = e.native()
		}
		return out
	}
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindInt8:
		return int8(v.i64)
	case KindInt16:
		return int16(v.i64)
	case KindInt32:
		return int32(v.i64)
	case KindInt64:
		return v.i64
	case KindUint8:
		return uint8(v.u64)
	case KindUint16:
		return uint16(v.u64)
	case KindUint32:
		return uint32(v.u64)
	case KindUint64:
		return v.u64
	case KindFloat32:
		return float32(v.f64)
	case KindFloat64:
		return v.f64
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler using the native representation.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}
