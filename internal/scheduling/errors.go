package scheduling

import "errors"

var (
	// ErrInvalidTimeFormat is returned when a rule carries a time value
	// that cannot be parsed as HH:MM
	ErrInvalidTimeFormat = errors.New("scheduling: invalid time format")

	// ErrInvalidRule is returned when a rule violates its invariants
	// (inverted interval, non-positive slot size, lunch outside the
	// work interval)
	ErrInvalidRule = errors.New("scheduling: invalid work-hour rule")
)
