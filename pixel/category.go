package pixel

// Category groups catalogue types that share algorithmic behavior.
//
// Generic operations are written once per category, not once per concrete
// type: integer widths share saturating arithmetic, float widths share
// rounding and epsilon logic, complex widths share magnitude logic, and the
// packed bit type is a category of its own with a single inhabitant.
type Category uint8

const (
	// CategoryUnknown is the zero value; no catalogue type maps to it.
	CategoryUnknown Category = iota
	// Integral covers the eight signed and unsigned integer widths.
	Integral
	// Floating covers float32 and float64.
	Floating
	// ComplexFloating covers complex64 and complex128.
	ComplexFloating
	// Boolean covers the packed bit type.
	Boolean
)

// Categories returns all valid categories in a stable order.
func Categories() []Category {
	return []Category{Integral, Floating, ComplexFloating, Boolean}
}

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case Integral:
		return "integral"
	case Floating:
		return "floating"
	case ComplexFloating:
		return "complex"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}
