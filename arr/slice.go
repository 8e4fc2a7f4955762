package arr

import (
	"math/rand/v2"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Typed slice helpers
//
// These operate on ordinary Go slices, including the []any lists that
// wildcard lookups return:
//
//	hosts, _ := Lookup(cfg, "servers.*.host", nil, true)
//	Unique(hosts.([]any))
//
// Names that would collide with the mapping helpers carry a Func suffix.
// ─────────────────────────────────────────────────────────────────────────────

// FirstFunc returns the first element, optionally the first matching fns[0].
// It reports false when items is empty or nothing matches.
func FirstFunc[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) == 0 {
		if len(items) == 0 {
			return zero, false
		}
		return items[0], true
	}
	if i := slices.IndexFunc(items, fns[0]); i >= 0 {
		return items[i], true
	}
	return zero, false
}

// LastFunc returns the last element, optionally the last matching fns[0].
// It reports false when items is empty or nothing matches.
func LastFunc[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	for i := len(items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](items[i]) {
			return items[i], true
		}
	}
	return zero, false
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	return slices.ContainsFunc(items, fn)
}

// ContainsValue reports whether items holds value.
func ContainsValue[T comparable](items []T, value T) bool {
	return slices.Contains(items, value)
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	return slices.Index(items, value)
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	return slices.IndexFunc(items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// MapFunc applies fn(item, index) to each element.
func MapFunc[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which fn(item, index) reports true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn reports false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Reduce folds items into a single value, starting from initial.
//
//	Reduce([]int{1, 2, 3}, func(acc, n, _ int) int { return acc + n }, 0) // → 6
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// FlatMap applies fn to each element and concatenates the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// PluckFunc extracts one value from every element.
func PluckFunc[T, U any](items []T, fn func(T) U) []U {
	return MapFunc(items, func(item T, _ int) U { return fn(item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns items without duplicates, keeping first occurrences.
//
// Unique panics on []any holding uncomparable values such as maps; use
// [UniqueBy] for those.
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(item T) T { return item })
}

// UniqueBy removes elements whose key, as computed by fn, was already seen.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Diff returns the elements of a that are not in b.
func Diff[T comparable](a, b []T) []T {
	set := toSet(b)
	return Filter(a, func(item T, _ int) bool {
		_, found := set[item]
		return !found
	})
}

// Intersect returns the elements of a that are also in b.
func Intersect[T comparable](a, b []T) []T {
	set := toSet(b)
	return Filter(a, func(item T, _ int) bool {
		_, found := set[item]
		return found
	})
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size. The last group may be
// shorter. Each group is a copy.
//
//	Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for c := range slices.Chunk(items, size) {
		chunks = append(chunks, slices.Clone(c))
	}
	return chunks
}

// Collapse concatenates a slice of slices.
func Collapse[T any](items [][]T) []T {
	return slices.Concat(items...)
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}

// Prepend returns values followed by items.
func Prepend[T any](items []T, values ...T) []T {
	return slices.Concat(values, items)
}

// Wrap wraps value in a one-element slice.
func Wrap[T any](value T) []T {
	return []T{value}
}

// Partition splits items into those satisfying fn and the rest.
func Partition[T any](items []T, fn func(T) bool) (pass, fail []T) {
	pass, fail = make([]T, 0), make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Pair holds two values produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs elements of a and b at the same index, stopping at the shorter
// slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Combine builds a map from equal-length key and value slices. It returns
// [ErrMismatchedLengths] otherwise.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// GroupBy groups items by the key fn computes.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy indexes items by the key fn computes. The last item wins on a shared
// key.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a stably sorted copy of items. cmp follows the [slices.SortFunc]
// convention: negative when a sorts before b.
func Sort[T any](items []T, cmp func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, cmp)
	return out
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := slices.Clone(items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns n items chosen at random without replacement. When n
// covers the whole slice, a shuffled copy of all items is returned.
func Sample[T any](items []T, n int) []T {
	s := Shuffle(items)
	if n >= len(s) {
		return s
	}
	return s[:max(n, 0)]
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up the values fn extracts.
func Sum[T any](items []T, fn func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Min returns the element with the smallest value fn extracts. It reports
// false when items is empty.
func Min[T any](items []T, fn func(T) float64) (T, bool) {
	return extreme(items, fn, func(a, b float64) bool { return a < b })
}

// Max returns the element with the largest value fn extracts. It reports
// false when items is empty.
func Max[T any](items []T, fn func(T) float64) (T, bool) {
	return extreme(items, fn, func(a, b float64) bool { return a > b })
}

func extreme[T any](items []T, fn func(T) float64, better func(a, b float64) bool) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best, bestVal := items[0], fn(items[0])
	for _, item := range items[1:] {
		if v := fn(item); better(v, bestVal) {
			best, bestVal = item, v
		}
	}
	return best, true
}
