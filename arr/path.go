package arr

import (
	"fmt"
	"strings"
)

const (
	// Delimiter separates the segments of a path.
	Delimiter = "."

	// Wildcard is the segment that fans out over every entry of a mapping.
	Wildcard = "*"
)

// resolution is the outcome of walking a path: either a value was found
// (possibly nil) or the path is missing.
type resolution struct {
	value any
	found bool
}

var missing = resolution{}

func found(v any) resolution { return resolution{value: v, found: true} }

// Get retrieves a value using a dot-notation path, returning def[0] (or nil)
// when the path cannot be resolved. Traversal problems never surface as
// errors; use [Lookup] with nullable=false for strict access.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "theme.*.color")            // []any{"red", "blue"}
//	Get(m, "user.missing", "default")  // "default"
func Get(values any, path string, def ...any) any {
	var fallback any
	if len(def) > 0 {
		fallback = def[0]
	}
	v, err := Lookup(values, path, fallback, true)
	if err != nil {
		return fallback
	}
	return v
}

// Lookup is the full form of [Get].
//
// When values is not a mapping or is empty, def is returned. A path that is
// itself a top-level key wins over dotted traversal, so a key literally named
// "a.b" is returned as is. Otherwise leading delimiters and spaces and
// trailing delimiters, spaces and wildcards are trimmed and the path is split
// into segments.
//
// A "*" segment resolves the remaining segments against every entry of the
// current mapping and collects the found values into a []any in iteration
// order; an empty collection yields def. Wildcard resolution ends the walk.
//
// With nullable=true a segment that does not exist is skipped and the walk
// continues with the next segment against the same mapping; descending into
// a non-mapping yields def. With nullable=false those cases return
// [ErrNotFound] and [ErrInvalidTraversal] respectively.
func Lookup(values any, path string, def any, nullable bool) (any, error) {
	r, err := resolvePath(values, path, nullable)
	return settle(r, err, def)
}

// LookupSegments is [Lookup] for a path that has already been split. The
// literal-key fast path and trimming do not apply.
//
//	LookupSegments(m, []string{"theme", "*", "color"}, nil, true)
func LookupSegments(values any, segments []string, def any, nullable bool) (any, error) {
	m, ok := AsMapping(values)
	if !ok || m.Len() == 0 {
		return def, nil
	}
	r, err := walk(m, segments, strings.Join(segments, Delimiter), nullable)
	return settle(r, err, def)
}

func settle(r resolution, err error, def any) (any, error) {
	if err != nil {
		return def, err
	}
	if !r.found {
		return def, nil
	}
	return r.value, nil
}

func resolvePath(values any, path string, nullable bool) (resolution, error) {
	m, ok := AsMapping(values)
	if !ok || m.Len() == 0 {
		return missing, nil
	}
	if v, ok := m.Lookup(path); ok {
		return found(v), nil
	}
	return walk(m, parsePath(path), path, nullable)
}

// parsePath trims and splits a string path.
func parsePath(path string) []string {
	path = strings.TrimLeft(path, Delimiter+" ")
	path = strings.TrimRight(path, Delimiter+" "+Wildcard)
	return strings.Split(path, Delimiter)
}

func walk(current Mapping, segments []string, path string, nullable bool) (resolution, error) {
	for i, key := range segments {
		rest := segments[i+1:]

		if v, ok := current.Lookup(key); ok {
			if len(rest) == 0 {
				return found(v), nil
			}
			next, ok := AsMapping(v)
			if !ok {
				if nullable {
					return missing, nil
				}
				return missing, fmt.Errorf("%w: %q is not a mapping, trying to grab %q", ErrInvalidTraversal, key, path)
			}
			current = next
			continue
		}

		if key == Wildcard {
			return fanOut(current, rest, path, nullable)
		}

		if !nullable {
			return missing, fmt.Errorf("%w: trying to grab %q", ErrNotFound, path)
		}
	}
	return missing, nil
}

func fanOut(m Mapping, rest []string, path string, nullable bool) (resolution, error) {
	sub := strings.Join(rest, Delimiter)
	var out []any
	for _, k := range m.Keys() {
		elem, _ := m.Lookup(k)

		r := found(elem)
		if len(rest) > 0 {
			var err error
			if r, err = resolvePath(elem, sub, nullable); err != nil {
				return missing, err
			}
		}

		if r.found {
			out = append(out, r.value)
			continue
		}
		if !nullable {
			return missing, fmt.Errorf("%w: trying to grab %q of %q", ErrNotFound, sub, path)
		}
	}
	if len(out) == 0 {
		return missing, nil
	}
	return found(out), nil
}

// Has reports whether every segment of the dot-notation path exists. The
// final value is not inspected and wildcards are not expanded.
func Has(values any, path string) bool {
	current := values
	for _, seg := range strings.Split(path, Delimiter) {
		m, ok := AsMapping(current)
		if !ok {
			return false
		}
		v, ok := m.Lookup(seg)
		if !ok {
			return false
		}
		current = v
	}
	return true
}

// HasAll reports whether all dot-notation paths exist in values.
func HasAll(values any, paths ...string) bool {
	for _, p := range paths {
		if !Has(values, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the dot-notation paths exist in values.
func HasAny(values any, paths ...string) bool {
	for _, p := range paths {
		if Has(values, p) {
			return true
		}
	}
	return false
}

// Set writes value into values at the dot-notation path, creating
// intermediate mappings as needed. A non-mapping value sitting on an
// intermediate segment is replaced. New intermediates are map[string]any when
// values is a map[string]any and [*Map] otherwise.
//
// A nested list written past its end grows, padded with nil. A nested list
// addressed by a non-index key becomes an index-keyed mapping.
//
//	Set(m, "user.address.postcode", "EC1")
//	Set(m, "servers.2.host", "c")  // servers had two elements
//
// Set fails only when values itself is not a mutable mapping, or is a list
// that would have to grow.
func Set(values any, path string, value any) error {
	root, ok := asMutable(values)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotMapping, values)
	}

	segments := strings.Split(path, Delimiter)
	var (
		current   = root
		parent    MutableMapping
		parentKey string
	)
	for i, seg := range segments {
		if l, ok := current.(list); ok && !l.holds(seg) {
			if parent == nil {
				return fmt.Errorf("%w: %q (len %d)", ErrIndexOutOfRange, seg, len(l))
			}
			widened, raw := l.widen(seg, root)
			if err := parent.Store(parentKey, raw); err != nil {
				return err
			}
			current = widened
		}
		if i == len(segments)-1 {
			return current.Store(seg, value)
		}

		v, _ := current.Lookup(seg)
		next, ok := asMutable(v)
		if !ok {
			var raw any
			next, raw = emptyLike(root)
			if err := current.Store(seg, raw); err != nil {
				return err
			}
		}
		parent, parentKey, current = current, seg, next
	}
	return nil
}

// Delete removes the value at the dot-notation path. It returns false when
// an intermediate segment is missing or not a mutable mapping. Deleting a
// final key that is already absent succeeds.
//
// Removing the last element of a nested list truncates it; removing any
// other element turns the list into an index-keyed mapping so that the
// remaining elements keep their indexes. Elements of a root list cannot be
// removed.
func Delete(values any, path string) bool {
	root, ok := asMutable(values)
	if !ok {
		return false
	}

	segments := strings.Split(path, Delimiter)
	var (
		current   = root
		parent    MutableMapping
		parentKey string
	)
	for _, seg := range segments[:len(segments)-1] {
		v, ok := current.Lookup(seg)
		if !ok {
			return false
		}
		next, ok := asMutable(v)
		if !ok {
			return false
		}
		parent, parentKey, current = current, seg, next
	}

	last := segments[len(segments)-1]
	if l, ok := current.(list); ok && l.holds(last) {
		if parent == nil {
			return false
		}
		return parent.Store(parentKey, l.without(last, root)) == nil
	}
	return current.Remove(last)
}

// Forget removes each dot-notation path from values, ignoring paths that do
// not resolve.
func Forget(values any, paths ...string) {
	for _, p := range paths {
		Delete(values, p)
	}
}
