package arr

import "errors"

// Sentinel errors returned by the path accessor and mapping helpers.
var (
	// ErrInvalidTraversal is returned when a path tries to descend into a
	// value that is not a mapping at a non-terminal segment.
	ErrInvalidTraversal = errors.New("arr: cannot traverse into a non-mapping value")

	// ErrNotFound is returned by strict (non-nullable) lookups when a
	// segment, or a wildcard branch, cannot be resolved.
	ErrNotFound = errors.New("arr: path not found")

	// ErrNotMapping is returned when a write is attempted on a value that is
	// not a mutable mapping.
	ErrNotMapping = errors.New("arr: value is not a mutable mapping")

	// ErrIndexOutOfRange is returned when a write would have to grow or rekey
	// a list passed as the root value, which cannot be replaced in place.
	ErrIndexOutOfRange = errors.New("arr: list index out of range")

	// ErrMismatchedLengths is returned by Combine when keys and values differ
	// in length.
	ErrMismatchedLengths = errors.New("arr: keys and values have different lengths")

	// ErrEmpty is returned by Random when there is nothing to choose from.
	ErrEmpty = errors.New("arr: operation on empty mapping")
)
