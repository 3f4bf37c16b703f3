package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrDoctorNotFound is returned when the directory has no such doctor
	ErrDoctorNotFound = errors.New("create_appointment: doctor not found")

	// ErrDoctorNotWorking is returned when no work-hour rule applies to
	// the requested date
	ErrDoctorNotWorking = errors.New("create_appointment: doctor does not attend on this date")

	// ErrInvalidTimeSlot is returned when the requested time is not on
	// the doctor's slot grid for that date
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable is returned when the slot is already taken
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrDateInPast is returned when the requested date is before today
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("create_appointment: internal error")
)
