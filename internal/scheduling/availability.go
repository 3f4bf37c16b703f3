package scheduling

import (
	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/pkg/types"
)

// Annotate marks each slot as available or booked. A slot is booked
// when its time appears in booked, unless it equals preserve - the
// currently-assigned slot of an appointment being rescheduled, which
// must not show as unavailable to itself.
//
// Output order matches input order; no slot is dropped or duplicated.
func Annotate(slots []types.TimeString, booked map[types.TimeString]struct{}, preserve *types.TimeString) []domain.Slot {
	result := make([]domain.Slot, len(slots))

	for i, t := range slots {
		_, isBooked := booked[t]
		available := !isBooked || (preserve != nil && t == *preserve)
		result[i] = domain.Slot{Time: t, Available: available}
	}

	return result
}

// BookedTimes builds the occupied-slot set from a day's appointments,
// skipping cancelled ones.
func BookedTimes(appointments []*domain.Appointment) map[types.TimeString]struct{} {
	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		if !appt.OccupiesSlot() {
			continue
		}
		booked[appt.StartTime] = struct{}{}
	}
	return booked
}

// Summarize counts a day's slots for the doctors-by-date search view.
func Summarize(doctorID int64, slots []domain.Slot) domain.DoctorDayAvailability {
	summary := domain.DoctorDayAvailability{
		DoctorID:   doctorID,
		TotalSlots: len(slots),
	}
	for _, slot := range slots {
		if slot.Available {
			summary.AvailableSlots++
		} else {
			summary.BookedSlots++
		}
	}
	return summary
}
