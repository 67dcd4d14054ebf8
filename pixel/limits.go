package pixel

import "math"

// Limits returns the representable range of the integer sample type T.
// min is always 0 for unsigned types.
func Limits[T Integer]() (min int64, max uint64) {
	var z T
	switch any(z).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	case int64:
		return math.MinInt64, math.MaxInt64
	case uint8:
		return 0, math.MaxUint8
	case uint16:
		return 0, math.MaxUint16
	case uint32:
		return 0, math.MaxUint32
	case uint64:
		return 0, math.MaxUint64
	default:
		return 0, 0
	}
}

// ClampInt converts v to T, saturating at the range limits of T instead of
// wrapping. Written once for the whole integral category.
func ClampInt[T Integer](v int64) T {
	min, max := Limits[T]()
	if v < min {
		return T(min)
	}
	if v > 0 && uint64(v) > max {
		return T(max)
	}
	return T(v)
}

// RoundInt rounds v half away from zero and converts it to T, saturating at
// the range limits of T. NaN maps to zero.
func RoundInt[T Integer](v float64) T {
	if math.IsNaN(v) {
		return 0
	}
	min, max := Limits[T]()
	r := math.Round(v)
	if r <= float64(min) {
		return T(min)
	}
	if r >= float64(max) {
		return T(max)
	}
	if min == 0 {
		return T(uint64(r))
	}
	return T(int64(r))
}

// Magnitude returns the modulus of a complex sample, the quantity complex
// comparisons and orderings are defined over.
func Magnitude(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}
