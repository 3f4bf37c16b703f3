package domain

import (
	"time"

	"github.com/medagenda/scheduling-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPreScheduled AppointmentStatus = "PRE_SCHEDULED"
	StatusScheduled    AppointmentStatus = "SCHEDULED"
	StatusConfirmed    AppointmentStatus = "CONFIRMED"
	StatusCompleted    AppointmentStatus = "COMPLETED"
	StatusCancelled    AppointmentStatus = "CANCELLED"
	StatusNoShow       AppointmentStatus = "NO_SHOW"
)

// Appointment represents a patient appointment with a doctor
type Appointment struct {
	ID        int64
	DoctorID  int64
	PatientID int64
	Date      time.Time
	StartTime types.TimeString
	Status    AppointmentStatus

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot reports whether the appointment consumes its time slot.
// Every status except CANCELLED occupies.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	switch a.Status {
	case StatusPreScheduled, StatusScheduled, StatusConfirmed:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the appointment reached a closed state
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo validates a status change against the appointment
// lifecycle: PRE_SCHEDULED -> SCHEDULED -> CONFIRMED -> COMPLETED | NO_SHOW,
// CANCELLED from any non-terminal state, and the reversal path
// COMPLETED/NO_SHOW -> SCHEDULED for fixing front-desk mistakes.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPreScheduled:
		return next == StatusScheduled || next == StatusCancelled
	case StatusScheduled:
		return next == StatusConfirmed || next == StatusCompleted ||
			next == StatusNoShow || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusNoShow || next == StatusCancelled
	case StatusCompleted, StatusNoShow:
		return next == StatusScheduled
	default:
		return false
	}
}

// DoctorAppointmentsFilter selects a doctor's appointments for listing
// and for availability queries
type DoctorAppointmentsFilter struct {
	DoctorID         int64              // Required
	StartDate        *time.Time         // Period start (nil = unbounded)
	EndDate          *time.Time         // Period end (nil = unbounded)
	Status           *AppointmentStatus // Exact status match (optional)
	IncludeCancelled bool               // Whether cancelled appointments are returned
}
