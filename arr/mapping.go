package arr

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Mapping is the single capability the path accessor understands: an ordered
// key/value container. Anything that is not a Mapping (or cannot be adapted
// to one by [AsMapping]) is treated as a leaf value.
type Mapping interface {
	// Len returns the number of entries.
	Len() int

	// Keys returns the keys in iteration order.
	Keys() []string

	// Lookup returns the value stored under key and whether it exists.
	Lookup(key string) (any, bool)
}

// MutableMapping is a Mapping that can be written in place.
type MutableMapping interface {
	Mapping

	// Store writes value under key.
	Store(key string, value any) error

	// Remove deletes key and reports whether the mapping no longer holds it.
	Remove(key string) bool
}

// AsMapping adapts v to a Mapping. Supported shapes are:
//
//   - any Mapping implementation, including [*Map]
//   - map[string]any, iterated in sorted key order
//   - []any, keyed by decimal index; [Set] and [Delete] replace a nested list
//     in its parent when it has to grow or lose an element, while a root
//     list keeps its length
//
// Callers holding other container shapes should convert them first.
func AsMapping(v any) (Mapping, bool) {
	switch t := v.(type) {
	case Mapping:
		return t, true
	case map[string]any:
		return goMap(t), true
	case []any:
		return list(t), true
	}
	return nil, false
}

// IsMapping reports whether v can be adapted by [AsMapping].
func IsMapping(v any) bool {
	_, ok := AsMapping(v)
	return ok
}

func asMutable(v any) (MutableMapping, bool) {
	switch t := v.(type) {
	case MutableMapping:
		return t, true
	case map[string]any:
		if t == nil {
			return nil, false
		}
		return goMap(t), true
	case []any:
		return list(t), true
	}
	return nil, false
}

// emptyLike returns a fresh mapping of the same family as m, both as a
// MutableMapping and as the raw value to store in a parent.
func emptyLike(m Mapping) (MutableMapping, any) {
	if _, ok := m.(goMap); ok {
		raw := make(map[string]any)
		return goMap(raw), raw
	}
	raw := NewMap()
	return raw, raw
}

func valuesOf(m Mapping) []any {
	out := make([]any, 0, m.Len())
	for _, k := range m.Keys() {
		v, _ := m.Lookup(k)
		out = append(out, v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// map[string]any adapter
// ─────────────────────────────────────────────────────────────────────────────

type goMap map[string]any

func (m goMap) Len() int { return len(m) }

func (m goMap) Keys() []string { return slices.Sorted(maps.Keys(m)) }

func (m goMap) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m goMap) Store(key string, value any) error {
	m[key] = value
	return nil
}

func (m goMap) Remove(key string) bool {
	delete(m, key)
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// []any adapter
// ─────────────────────────────────────────────────────────────────────────────

type list []any

func (l list) Len() int { return len(l) }

func (l list) Keys() []string {
	keys := make([]string, len(l))
	for i := range l {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

func (l list) Lookup(key string) (any, bool) {
	i, ok := index(key)
	if !ok || i >= len(l) {
		return nil, false
	}
	return l[i], true
}

func (l list) Store(key string, value any) error {
	i, ok := index(key)
	if !ok || i >= len(l) {
		return fmt.Errorf("%w: %q (len %d)", ErrIndexOutOfRange, key, len(l))
	}
	l[i] = value
	return nil
}

func (l list) Remove(key string) bool {
	_, exists := l.Lookup(key)
	return !exists
}

// holds reports whether key addresses an existing element.
func (l list) holds(key string) bool {
	i, ok := index(key)
	return ok && i < len(l)
}

// widen returns a replacement for l that can store key: a list padded with
// nil up to an index past the end, or an index-keyed mapping of root's
// family for any other key.
func (l list) widen(key string, root Mapping) (MutableMapping, any) {
	if i, ok := index(key); ok {
		grown := make([]any, i+1)
		copy(grown, l)
		return list(grown), grown
	}
	return l.rekey(root, "")
}

// without returns a replacement for l that no longer holds key. The last
// element is dropped by truncation; any other element turns the list into
// an index-keyed mapping so the remaining indexes keep their meaning.
func (l list) without(key string, root Mapping) any {
	if i, _ := index(key); i == len(l)-1 {
		return []any(l[:i:i])
	}
	_, raw := l.rekey(root, key)
	return raw
}

func (l list) rekey(root Mapping, skip string) (MutableMapping, any) {
	m, raw := emptyLike(root)
	for i, v := range l {
		if k := strconv.Itoa(i); k != skip {
			_ = m.Store(k, v)
		}
	}
	return m, raw
}

// index converts a digit-only segment to an integer key.
func index(key string) (int, bool) {
	if !isDigits(key) {
		return 0, false
	}
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return i, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
