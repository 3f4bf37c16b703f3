package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel is returned when the appointment is already in a
	// terminal state
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidTransition is returned when the requested status change
	// violates the appointment lifecycle
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned on an unknown status value
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
