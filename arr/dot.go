package arr

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Flattening and reshaping of nested mappings
//
// Every function here accepts anything [AsMapping] understands, so the same
// helpers work on map[string]any, ordered [*Map] values and decoded JSON
// lists:
//
//	Dot(m)                  → {"user.name": "Alice", "tags.0": "x"}
//	Undot(flat)             → nested map[string]any
//	Only(m, "a", "c")       → *Map with a and c
//	MergeUnique(a, b, false)
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens nested mappings into a single-level map whose keys are the
// joined paths. Lists are flattened by index. Empty nested mappings vanish.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(values any) map[string]any {
	return DotWith(values, Delimiter)
}

// DotWith is [Dot] with a custom separator.
func DotWith(values any, sep string) map[string]any {
	out := make(map[string]any)
	if m, ok := AsMapping(values); ok {
		dotFlatten("", sep, m, out)
	}
	return out
}

func dotFlatten(prefix, sep string, m Mapping, out map[string]any) {
	for _, k := range m.Keys() {
		v, _ := m.Lookup(k)
		key := prefix + k
		if nested, ok := AsMapping(v); ok {
			dotFlatten(key+sep, sep, nested, out)
			continue
		}
		out[key] = v
	}
}

// Undot expands a flat dot-notation map into a nested map[string]any.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(flat map[string]any) map[string]any {
	out := make(map[string]any)
	for _, key := range goMap(flat).Keys() {
		_ = Set(out, key, flat[key])
	}
	return out
}

// Only returns a new [*Map] holding only the given top-level keys, in the
// source iteration order.
func Only(values any, keys ...string) *Map {
	keep := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}
	return filterKeys(values, func(k string) bool {
		_, ok := keep[k]
		return ok
	})
}

// Except returns a new [*Map] without the given top-level keys.
func Except(values any, keys ...string) *Map {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	return filterKeys(values, func(k string) bool {
		_, skip := drop[k]
		return !skip
	})
}

func filterKeys(values any, keep func(string) bool) *Map {
	out := NewMap()
	m, ok := AsMapping(values)
	if !ok {
		return out
	}
	for _, k := range m.Keys() {
		if keep(k) {
			v, _ := m.Lookup(k)
			_ = out.Store(k, v)
		}
	}
	return out
}

// Merge merges src into dst in place. Values in src overwrite values in dst
// for matching keys; when both sides hold mutable mappings they are merged
// recursively.
func Merge(dst, src any) error {
	d, ok := asMutable(dst)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotMapping, dst)
	}
	s, ok := AsMapping(src)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotMapping, src)
	}
	for _, k := range s.Keys() {
		srcVal, _ := s.Lookup(k)
		if dstVal, ok := d.Lookup(k); ok && IsMapping(srcVal) {
			if _, dstIsMap := asMutable(dstVal); dstIsMap {
				if err := Merge(dstVal, srcVal); err != nil {
					return err
				}
				continue
			}
		}
		if err := d.Store(k, srcVal); err != nil {
			return err
		}
	}
	return nil
}

// Replace marks a value in the second argument of [MergeUnique] that must
// replace the existing value outright instead of being merged.
type Replace struct {
	Value any
}

// Remove marks a key in the second argument of [MergeUnique] that must be
// dropped from the result.
type Remove struct{}

// MergeUnique merges second into first and returns the result; neither
// input is modified.
//
// Two lists are combined by appending the elements of second, skipping
// scalars already present in first. With preserveNumericKeys the lists are
// merged position by position instead. Two mappings are merged key by key,
// recursing where both sides are containers; a [Replace] value overwrites and
// a [Remove] value deletes. In every other case second wins.
//
// Mapping results are map[string]any when first is a map[string]any and
// [*Map] otherwise.
func MergeUnique(first, second any, preserveNumericKeys bool) any {
	if r, ok := second.(Replace); ok {
		return r.Value
	}

	a, aList := first.([]any)
	b, bList := second.([]any)
	if aList && bList {
		if preserveNumericKeys {
			return mergePositional(a, b)
		}
		return appendUnique(a, b)
	}

	fm, ok := AsMapping(first)
	if !ok || aList || bList {
		return second
	}
	sm, ok := AsMapping(second)
	if !ok {
		return second
	}

	out, raw := emptyLike(fm)
	for _, k := range fm.Keys() {
		v, _ := fm.Lookup(k)
		_ = out.Store(k, v)
	}
	for _, k := range sm.Keys() {
		v, _ := sm.Lookup(k)
		switch marker := v.(type) {
		case Replace:
			_ = out.Store(k, marker.Value)
			continue
		case Remove:
			out.Remove(k)
			continue
		}
		if cur, ok := out.Lookup(k); ok && IsMapping(cur) && IsMapping(v) {
			_ = out.Store(k, MergeUnique(cur, v, preserveNumericKeys))
			continue
		}
		_ = out.Store(k, v)
	}
	return raw
}

func appendUnique(a, b []any) []any {
	out := make([]any, len(a), len(a)+len(b))
	copy(out, a)
	for _, v := range b {
		if _, ok := v.(Remove); ok {
			continue
		}
		if isScalar(v) && Contains(out, func(item any) bool { return isScalar(item) && item == v }) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func mergePositional(a, b []any) []any {
	n := max(len(a), len(b))
	out := make([]any, n)
	copy(out, a)
	for i, v := range b {
		if i < len(a) && IsMapping(a[i]) && IsMapping(v) {
			out[i] = MergeUnique(a[i], v, true)
			continue
		}
		if r, ok := v.(Replace); ok {
			v = r.Value
		}
		out[i] = v
	}
	return out
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// Fetch descends into every entry of values following the dot-notation path
// and returns the collected leaves as a flat list. Entries that lack a
// segment are dropped.
//
//	Fetch(posts, "author.name") // → []any{"Ann", "Bob"}
func Fetch(values any, path string) []any {
	m, ok := AsMapping(values)
	if !ok {
		return []any{}
	}
	current := valuesOf(m)
	for _, seg := range strings.Split(path, Delimiter) {
		current = FlatMap(current, func(item any, _ int) []any {
			if im, ok := AsMapping(item); ok {
				if v, ok := im.Lookup(seg); ok {
					return []any{v}
				}
			}
			return nil
		})
	}
	return current
}

// WalkDelete returns a copy of values with every entry removed for which
// fn(value, key) reports true. Nested containers are pruned first, so fn sees
// the already-pruned child. Non-mapping input is returned unchanged.
func WalkDelete(values any, fn func(value any, key string) bool) any {
	if l, ok := values.([]any); ok {
		out := make([]any, 0, len(l))
		for i, v := range l {
			v = WalkDelete(v, fn)
			if !fn(v, fmt.Sprint(i)) {
				out = append(out, v)
			}
		}
		return out
	}

	m, ok := AsMapping(values)
	if !ok {
		return values
	}
	out, raw := emptyLike(m)
	for _, k := range m.Keys() {
		v, _ := m.Lookup(k)
		v = WalkDelete(v, fn)
		if !fn(v, k) {
			_ = out.Store(k, v)
		}
	}
	return raw
}
