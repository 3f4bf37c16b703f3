// Package scheduling is the doctor availability engine: it resolves
// which work-hour rule applies to a date, expands the rule into a slot
// grid, and annotates the grid against existing appointments.
//
// Everything here is a pure function of its inputs. The engine never
// reads the clock, never touches storage, and its output is advisory:
// the authoritative slot-collision check happens at appointment-insert
// time inside a serializable transaction.
package scheduling

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
)

// Resolve selects the single work-hour rule applying to the doctor on
// the given date. A specific-date rule always wins over a recurring
// weekday rule. Within one precedence tier the first match in input
// order wins, so callers that need stability must pass rules in a
// deterministic order.
//
// The second return value is false when the doctor is not working that
// date. rules may contain entries for other doctors; they are ignored.
func Resolve(rules []*domain.WorkHourRule, doctorID int64, date time.Time) (*domain.WorkHourRule, bool) {
	weekday := int(date.Weekday())

	for _, rule := range rules {
		if rule.DoctorID != doctorID {
			continue
		}
		if rule.MatchesDate(date) {
			return rule, true
		}
	}

	for _, rule := range rules {
		if rule.DoctorID != doctorID {
			continue
		}
		if rule.MatchesWeekday(weekday) {
			return rule, true
		}
	}

	return nil, false
}
