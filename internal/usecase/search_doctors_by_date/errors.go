package search_doctors_by_date

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("search_doctors_by_date: invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("search_doctors_by_date: internal error")
)
