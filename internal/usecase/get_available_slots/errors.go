package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrAppointmentNotFound is returned when excludeAppointmentId
	// references a non-existent appointment
	ErrAppointmentNotFound = errors.New("get_available_slots: appointment not found")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
