package metadata

import "fmt"

// Flatten returns a new Map in which every vector entry is expanded into
// numbered scalar entries and every scalar entry is copied unchanged.
//
// A vector entry k -> [v1..vn] becomes "k #1" .. "k #n" (1-based, literal
// " #" separator). Flattened keys follow the source iteration order; within
// one vector the index order. The textual convention is a fixed contract for
// collaborators that parse flattened keys.
//
// Flatten never mutates the receiver, and it is idempotent: flattening an
// already flat map yields an equal map.
func (m *Map) Flatten() *Map {
	out := New()
	for _, k := range m.keys {
		v := m.entries[k]
		// Exactly one arm per kind: scalars copy verbatim, vectors expand.
		if !v.Kind().IsSlice() {
			out.put(k, v.clone())
			continue
		}
		for i, e := range v.a {
			out.put(fmt.Sprintf("%s #%d", k, i+1), e)
		}
	}
	return out
}
