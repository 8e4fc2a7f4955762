// Package arr provides standalone helpers for reading and reshaping nested
// key/value data using dot-notation paths, inspired by Laravel's Arr facade.
//
// # Mappings
//
// Every helper accepts anything [AsMapping] understands: map[string]any,
// the insertion-ordered [*Map], []any lists (keyed by index) and any custom
// [Mapping] implementation. Other values are leaves.
//
// map[string]any has no order of its own, so it is iterated in sorted key
// order. Use [*Map] when the document order matters, for example when
// fanning out with a wildcard.
//
// # Path access
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	    "theme": map[string]any{
//	        "a": map[string]any{"color": "red"},
//	        "b": map[string]any{"color": "blue"},
//	    },
//	}
//	arr.Get(m, "user.address.city")          // → "London"
//	arr.Get(m, "theme.*.color")              // → []any{"red", "blue"}
//	arr.Set(m, "user.address.postcode", "EC1")
//	arr.Has(m, "user.name")                  // → true
//	arr.Delete(m, "user.address")            // → true
//
// [Get] never fails: anything it cannot resolve becomes the default. Strict
// callers use [Lookup] with nullable=false and test the error with
// errors.Is against [ErrNotFound] or [ErrInvalidTraversal].
//
// # Slice helpers
//
// Generic helpers such as [Unique], [Chunk], [Partition], [Sort] and [Sum]
// work on any []T, including the []any lists wildcard lookups return.
//
// # Concurrency
//
// Nothing in this package holds state between calls. [Set], [Delete],
// [Forget] and [Merge] write into the caller's mapping; concurrent writers to
// the same mapping must synchronise themselves.
package arr
