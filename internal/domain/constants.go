package domain

// Default configuration values
const (
	DefaultSlotMinutes = 30
)

// Business validation constants
const (
	MinSlotMinutes = 5
	MaxSlotMinutes = 480 // 8 hours

	MinWeekday = 0 // Sunday
	MaxWeekday = 6 // Saturday

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses lists the statuses that consume a slot.
// Used when counting availability.
var OccupyingStatuses = []AppointmentStatus{
	StatusPreScheduled,
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}

// AllStatuses lists every valid appointment status.
// Used for request validation.
var AllStatuses = []AppointmentStatus{
	StatusPreScheduled,
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// IsValidStatus reports whether s is a known appointment status
func IsValidStatus(s AppointmentStatus) bool {
	for _, status := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}
