package arr

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Entry is a single key/value pair of a [Map].
type Entry struct {
	Key   string
	Value any
}

// Map is an insertion-ordered [MutableMapping]. Iteration, wildcard fan-out
// and JSON encoding all follow the order in which keys were first stored.
//
// The zero value is an empty map ready to use. A Map is not safe for
// concurrent writes.
type Map struct {
	keys  []string
	items map[string]any
}

// NewMap creates a Map holding entries in the given order. Later duplicates
// overwrite the value but keep the first position.
//
//	m := arr.NewMap(arr.Entry{"a", 1}, arr.Entry{"b", 2})
func NewMap(entries ...Entry) *Map {
	m := &Map{
		keys:  make([]string, 0, len(entries)),
		items: make(map[string]any, len(entries)),
	}
	for _, e := range entries {
		_ = m.Store(e.Key, e.Value)
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string { return slices.Clone(m.keys) }

// Lookup returns the value stored under key.
func (m *Map) Lookup(key string) (any, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Store writes value under key, appending the key if it is new. It never
// fails.
func (m *Map) Store(key string, value any) error {
	if m.items == nil {
		m.items = make(map[string]any)
	}
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = value
	return nil
}

// Remove deletes key. It always reports true.
func (m *Map) Remove(key string) bool {
	if _, ok := m.items[key]; !ok {
		return true
	}
	delete(m.items, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Entries returns the entries in insertion order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry{Key: k, Value: m.items[k]}
	}
	return out
}

// ToMap returns a plain map[string]any copy. Nested Maps are converted
// recursively; lists are copied.
func (m *Map) ToMap() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = Plain(m.items[k])
	}
	return out
}

// Plain converts every [*Map] inside v into a map[string]any, copying lists
// on the way. Other values are returned unchanged.
func Plain(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Plain(e)
		}
		return out
	}
	return v
}

// MarshalJSON encodes the map as a JSON object preserving key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.items[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
