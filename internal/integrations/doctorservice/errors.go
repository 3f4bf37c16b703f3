package doctorservice

import "errors"

var (
	// ErrDoctorNotFound is returned when the directory has no such doctor
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("doctorservice client: internal error")

	// ErrInvalidResponse is returned when the directory responds with
	// something the client cannot interpret
	ErrInvalidResponse = errors.New("doctorservice client: invalid response")
)
