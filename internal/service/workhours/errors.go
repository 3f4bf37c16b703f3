package workhours

import "errors"

var (
	// ErrRuleNotFound is returned when the rule does not exist
	ErrRuleNotFound = errors.New("work-hour rule not found")

	// ErrInvalidRule is returned when the rule violates its invariants.
	// Reads stay permissive with malformed stored rules; writes are
	// rejected here so new defects cannot enter.
	ErrInvalidRule = errors.New("invalid work-hour rule")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
