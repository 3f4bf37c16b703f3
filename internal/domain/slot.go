package domain

import "github.com/medagenda/scheduling-service/pkg/types"

// Slot is a bookable time unit derived from a work-hour rule.
// Slots are computed per query and never persisted.
type Slot struct {
	Time      types.TimeString
	Available bool
}

// DoctorDayAvailability aggregates a doctor's slot counts for one date.
// Consumed by the "doctors available on date" search view.
type DoctorDayAvailability struct {
	DoctorID       int64
	TotalSlots     int
	BookedSlots    int
	AvailableSlots int
}

// IsFullyBooked returns true if no slot is left on the day
func (d *DoctorDayAvailability) IsFullyBooked() bool {
	return d.TotalSlots > 0 && d.AvailableSlots == 0
}

// HasAvailability returns true if at least one slot is open
func (d *DoctorDayAvailability) HasAvailability() bool {
	return d.AvailableSlots > 0
}
