// Package metadata provides the typed, insertion-ordered key-value store for
// acquisition metadata.
//
// # Value Types
//
// Metadata values are drawn from a closed catalogue: bool, string, the signed
// and unsigned integer widths, float32 and float64, plus an ordered slice
// variant of each scalar kind. Every Value carries a Kind discriminant that
// is fixed when the value is created; readers query the discriminant (or use
// the typed accessors) before extracting the payload.
//
//	m := metadata.New()
//	m.Set("Model", metadata.Of("X1"))
//	m.Set("Gain", metadata.SliceOf([]float64{1.0, 2.0, 3.0}))
//
//	model, err := metadata.Get[string](m, "Model")
//	gain, err := metadata.GetSlice[float64](m, "Gain")
//
// # Ordering
//
// A Map preserves insertion order. Overwriting an existing key keeps its
// original position; only keys never seen before append to the order.
//
// # Flatten
//
// Flatten produces a strictly scalar view for exporters whose target format
// has no native vector values. A vector entry
//
//	"Gain" -> [1.0, 2.0, 3.0]
//
// expands, in place and in index order, to
//
//	"Gain #1" -> 1.0
//	"Gain #2" -> 2.0
//	"Gain #3" -> 3.0
//
// The 1-based numbering and the literal " #" separator are a fixed contract;
// collaborators parse flattened keys in exactly this form. Flattening an
// already flat map is a copy.
//
// # Concurrency
//
// A Map is a plain value container: safe for concurrent readers, external
// mutual exclusion required for writers.
package metadata
