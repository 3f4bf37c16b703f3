package create_appointment

import (
	"time"

	"github.com/medagenda/scheduling-service/pkg/types"
)

// Request asks to book a slot
type Request struct {
	DoctorID  int64
	PatientID int64
	Date      time.Time        // Appointment date (time part ignored)
	StartTime types.TimeString // Slot start, e.g. "10:00"
	Notes     *string

	// PreScheduled books the slot as PRE_SCHEDULED instead of
	// SCHEDULED; used by the pre-booking flow that awaits patient
	// confirmation
	PreScheduled bool
}

// Response carries the created appointment
type Response struct {
	ID        int64
	DoctorID  int64
	PatientID int64
	Date      time.Time
	StartTime types.TimeString
	Status    string
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
