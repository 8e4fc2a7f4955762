package locale

import "errors"

var (
	// ErrInvalidTag is returned when a string is not a well-formed BCP 47
	// language tag.
	ErrInvalidTag = errors.New("locale: invalid language tag")

	// ErrUnknownTimezone is returned by LoadTimezone for identifiers that are
	// not in the timezone table.
	ErrUnknownTimezone = errors.New("locale: unknown timezone")
)
