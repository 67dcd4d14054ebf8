package metadata

import "bytes"

// Map is an insertion-ordered mapping from string keys to typed values.
//
// Keys are unique; the last write for a key wins and keeps the key's original
// position in the iteration order.
type Map struct {
	keys    []string
	entries map[string]Value
}

// New returns an empty Map.
func New() *Map {
	return &Map{entries: make(map[string]Value)}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Has reports whether the key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Set stores a value under the key, overwriting any prior value. A key not
// previously present appends to the iteration order; overwriting leaves the
// order unchanged.
func (m *Map) Set(key string, v Value) error {
	if !v.kind.Valid() {
		return ErrInvalidValue
	}
	if m.entries == nil {
		m.entries = make(map[string]Value)
	}
	m.put(key, v.clone())
	return nil
}

// put stores an already-validated value, maintaining the iteration order.
func (m *Map) put(key string, v Value) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Get returns the value stored under the key.
func (m *Map) Get(key string) (Value, error) {
	v, ok := m.entries[key]
	if !ok {
		return Value{}, &KeyNotFoundError{Key: key}
	}
	return v, nil
}

// Delete removes the key and its position in the iteration order. It reports
// whether the key was present.
func (m *Map) Delete(key string) bool {
	if _, ok := m.entries[key]; !ok {
		return false
	}
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Get extracts the scalar stored under key as T. It fails with
// KeyNotFoundError if the key is absent and TypeMismatchError if the stored
// discriminant is not exactly the kind of T.
func Get[T Scalar](m *Map, key string) (T, error) {
	var zero T
	v, err := m.Get(key)
	if err != nil {
		return zero, err
	}
	x, ok := As[T](v)
	if !ok {
		return zero, &TypeMismatchError{Key: key, Want: KindOf[T](), Got: v.kind}
	}
	return x, nil
}

// GetSlice extracts the vector stored under key as []T, with the same
// failure modes as Get.
func GetSlice[T Scalar](m *Map, key string) ([]T, error) {
	v, err := m.Get(key)
	if err != nil {
		return nil, err
	}
	xs, ok := AsSlice[T](v)
	if !ok {
		return nil, &TypeMismatchError{Key: key, Want: KindOf[T]().Slice(), Got: v.kind}
	}
	return xs, nil
}

// Clone returns a deep copy of the map, preserving order.
func (m *Map) Clone() *Map {
	out := &Map{
		keys:    make([]string, len(m.keys)),
		entries: make(map[string]Value, len(m.entries)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.entries {
		out.entries[k] = v.clone()
	}
	return out
}

// Equal reports whether both maps hold the same keys in the same order with
// equal values.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k {
			return false
		}
		if !m.entries[k].Equal(o.entries[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the map as a JSON object whose members appear in
// insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := Of(k).MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := m.entries[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
