package domain

import (
	"time"

	"github.com/medagenda/scheduling-service/pkg/types"
)

// WorkHourRule describes when a doctor is bookable.
// A rule is either recurring (Weekday set, 0 = Sunday) or a
// specific-date override (SpecificDate set); an override always wins
// over the recurring rule for that date.
type WorkHourRule struct {
	ID       int64
	DoctorID int64

	Weekday      *int       // 0-6, 0 = Sunday; nil for specific-date rules
	SpecificDate *time.Time // exact calendar date; nil for recurring rules

	StartTime   types.TimeString
	EndTime     types.TimeString
	SlotMinutes int

	LunchStart *types.TimeString
	LunchEnd   *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSpecificDate returns true if the rule overrides a single date
func (r *WorkHourRule) IsSpecificDate() bool {
	return r.SpecificDate != nil
}

// IsRecurring returns true if the rule applies to a weekday every week
func (r *WorkHourRule) IsRecurring() bool {
	return r.SpecificDate == nil && r.Weekday != nil
}

// HasLunchBreak returns true if the rule excludes a lunch interval
func (r *WorkHourRule) HasLunchBreak() bool {
	return r.LunchStart != nil && r.LunchEnd != nil
}

// MatchesDate reports whether the rule's specific date equals date
func (r *WorkHourRule) MatchesDate(date time.Time) bool {
	if r.SpecificDate == nil {
		return false
	}
	y1, m1, d1 := r.SpecificDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MatchesWeekday reports whether the rule recurs on the given weekday
func (r *WorkHourRule) MatchesWeekday(weekday int) bool {
	return r.IsRecurring() && *r.Weekday == weekday
}
