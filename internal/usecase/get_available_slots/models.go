package get_available_slots

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
)

// Request asks for a doctor's bookable slots on a date
type Request struct {
	DoctorID int64     // Doctor to query
	Date     time.Time // Target date (time part ignored)

	// ExcludeAppointmentID marks an appointment being rescheduled:
	// its current slot is shown as available to its own edit form
	ExcludeAppointmentID *int64
}

// Response carries the annotated slot list
type Response struct {
	DoctorID int64
	Date     time.Time

	// Working distinguishes "doctor does not attend this date" from a
	// working day that happens to have zero bookable slots
	Working bool

	Slots []domain.Slot
}
