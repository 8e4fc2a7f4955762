package arr

import (
	"math/rand/v2"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & filtering
//
// Callbacks receive (key, value). For lists the key is the decimal index.
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first value for which fn reports true, or def.
func First(values any, fn func(key string, value any) bool, def any) any {
	m, ok := AsMapping(values)
	if !ok {
		return def
	}
	for _, k := range m.Keys() {
		v, _ := m.Lookup(k)
		if fn(k, v) {
			return v
		}
	}
	return def
}

// Last returns the last value for which fn reports true, or def.
func Last(values any, fn func(key string, value any) bool, def any) any {
	m, ok := AsMapping(values)
	if !ok {
		return def
	}
	keys := m.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		v, _ := m.Lookup(keys[i])
		if fn(keys[i], v) {
			return v
		}
	}
	return def
}

// Where returns the entries for which fn reports true, keys preserved.
func Where(values any, fn func(key string, value any) bool) *Map {
	out := NewMap()
	m, ok := AsMapping(values)
	if !ok {
		return out
	}
	for _, k := range m.Keys() {
		v, _ := m.Lookup(k)
		if fn(k, v) {
			_ = out.Store(k, v)
		}
	}
	return out
}

// SubstrIn reports whether needle occurs inside any element of haystack.
func SubstrIn(needle string, haystack []string) bool {
	for _, item := range haystack {
		if strings.Contains(item, needle) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Build creates a new [*Map] by passing every entry through fn, which
// returns the new key and value. Later keys overwrite earlier ones.
func Build(values any, fn func(key string, value any) (string, any)) *Map {
	out := NewMap()
	m, ok := AsMapping(values)
	if !ok {
		return out
	}
	for _, k := range m.Keys() {
		v, _ := m.Lookup(k)
		nk, nv := fn(k, v)
		_ = out.Store(nk, nv)
	}
	return out
}

// Divide splits values into its keys and its values.
func Divide(values any) ([]string, []any) {
	m, ok := AsMapping(values)
	if !ok {
		return []string{}, []any{}
	}
	return m.Keys(), valuesOf(m)
}

// Pluck returns the value stored under key in every entry of values. Entries
// that are not mappings or lack the key contribute nil.
//
//	Pluck(users, "name") // → []any{"Ann", "Bob"}
func Pluck(values any, key string) []any {
	m, ok := AsMapping(values)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, m.Len())
	for _, item := range valuesOf(m) {
		var v any
		if im, ok := AsMapping(item); ok {
			v, _ = im.Lookup(key)
		}
		out = append(out, v)
	}
	return out
}

// Flatten recursively collects every leaf of a nested structure into a flat
// list, in iteration order. A non-mapping input is returned as a single
// element.
func Flatten(values any) []any {
	out := make([]any, 0)
	var walk func(v any)
	walk = func(v any) {
		m, ok := AsMapping(v)
		if !ok {
			out = append(out, v)
			return
		}
		for _, child := range valuesOf(m) {
			walk(child)
		}
	}
	walk(values)
	return out
}

// Random returns a randomly chosen value of values.
// Returns ErrEmpty when there is nothing to choose from.
func Random(values any) (any, error) {
	m, ok := AsMapping(values)
	if !ok || m.Len() == 0 {
		return nil, ErrEmpty
	}
	keys := m.Keys()
	v, _ := m.Lookup(keys[rand.IntN(len(keys))])
	return v, nil
}
