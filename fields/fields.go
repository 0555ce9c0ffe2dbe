// Package fields provides an insertion-ordered map keyed by field name.
//
// Go maps do not guarantee iteration order, and statement rendering depends
// on registration order, so the map is an explicit entry slice plus a
// name-to-index lookup. Re-setting an existing field replaces its value in
// place and keeps the original position.
package fields

// Entry is a single field/value pair.
type Entry[V any] struct {
	Field string
	Value V
}

// Map is an insertion-ordered field map. The zero value is not usable;
// construct with NewMap.
type Map[V any] struct {
	entries []Entry[V]
	index   map[string]int
}

// NewMap creates an empty ordered map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{index: make(map[string]int)}
}

// Set stores value under field. If the field is already present its value is
// replaced and its position is unchanged; otherwise the field is appended.
func (m *Map[V]) Set(field string, value V) {
	if i, ok := m.index[field]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[field] = len(m.entries)
	m.entries = append(m.entries, Entry[V]{Field: field, Value: value})
}

// Get returns the value stored under field.
func (m *Map[V]) Get(field string) (V, bool) {
	if i, ok := m.index[field]; ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// Has reports whether field is present.
func (m *Map[V]) Has(field string) bool {
	_, ok := m.index[field]
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Fields returns the field names in insertion order.
func (m *Map[V]) Fields() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Field
	}
	return out
}

// Values returns the values in insertion order.
func (m *Map[V]) Values() []V {
	out := make([]V, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Value
	}
	return out
}

// Entries returns the entries in insertion order. The slice is shared with
// the map; callers must not append to or reorder it.
func (m *Map[V]) Entries() []Entry[V] {
	return m.entries
}
