package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/pkg/ptr"
	"github.com/medagenda/scheduling-service/pkg/types"
)

func morningSlots() []types.TimeString {
	return []types.TimeString{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	}
}

func TestAnnotate_BookedSlotUnavailable(t *testing.T) {
	booked := map[types.TimeString]struct{}{"09:00": {}}

	slots := Annotate(morningSlots(), booked, nil)
	require.Len(t, slots, 8)

	for _, slot := range slots {
		if slot.Time == "09:00" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available, "slot %s should be available", slot.Time)
		}
	}
}

func TestAnnotate_PreserveTimeStaysAvailable(t *testing.T) {
	// Rescheduling: the appointment's own slot must not block itself
	booked := map[types.TimeString]struct{}{"09:00": {}}

	slots := Annotate(morningSlots(), booked, ptr.Ptr(types.TimeString("09:00")))

	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s should be available", slot.Time)
	}
}

func TestAnnotate_PreserveDoesNotLeakToOtherSlots(t *testing.T) {
	booked := map[types.TimeString]struct{}{"09:00": {}, "10:00": {}}

	slots := Annotate(morningSlots(), booked, ptr.Ptr(types.TimeString("09:00")))

	byTime := make(map[types.TimeString]bool, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot.Available
	}
	assert.True(t, byTime["09:00"])
	assert.False(t, byTime["10:00"])
}

func TestAnnotate_PreservesOrderAndLength(t *testing.T) {
	input := morningSlots()
	booked := map[types.TimeString]struct{}{"08:30": {}, "11:00": {}}

	slots := Annotate(input, booked, nil)
	require.Len(t, slots, len(input))
	for i, slot := range slots {
		assert.Equal(t, input[i], slot.Time)
	}
}

func TestAnnotate_EmptyInputs(t *testing.T) {
	assert.Empty(t, Annotate(nil, nil, nil))

	slots := Annotate(morningSlots(), nil, nil)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestBookedTimes_SkipsCancelled(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "09:00", Status: domain.StatusScheduled},
		{StartTime: "09:30", Status: domain.StatusCancelled},
		{StartTime: "10:00", Status: domain.StatusPreScheduled},
		{StartTime: "10:30", Status: domain.StatusNoShow},
	}

	booked := BookedTimes(appointments)
	assert.Contains(t, booked, types.TimeString("09:00"))
	assert.NotContains(t, booked, types.TimeString("09:30"))
	assert.Contains(t, booked, types.TimeString("10:00"))
	assert.Contains(t, booked, types.TimeString("10:30"))
}

func TestSummarize_Counts(t *testing.T) {
	booked := map[types.TimeString]struct{}{"08:00": {}, "09:00": {}, "11:30": {}}
	slots := Annotate(morningSlots(), booked, nil)

	summary := Summarize(42, slots)
	assert.Equal(t, int64(42), summary.DoctorID)
	assert.Equal(t, 8, summary.TotalSlots)
	assert.Equal(t, 3, summary.BookedSlots)
	assert.Equal(t, 5, summary.AvailableSlots)
	assert.False(t, summary.IsFullyBooked())
	assert.True(t, summary.HasAvailability())
}

func TestSummarize_FullyBooked(t *testing.T) {
	input := []types.TimeString{"09:00", "09:30"}
	booked := map[types.TimeString]struct{}{"09:00": {}, "09:30": {}}

	summary := Summarize(1, Annotate(input, booked, nil))
	assert.True(t, summary.IsFullyBooked())
	assert.False(t, summary.HasAvailability())
}
