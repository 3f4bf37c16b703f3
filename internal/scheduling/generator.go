package scheduling

import (
	"fmt"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/pkg/types"
)

// Generate expands a work-hour rule into the ordered slot grid for one
// day. The grid is anchored at StartTime and steps by SlotMinutes; a
// slot is emitted only while its start is strictly before EndTime.
// Starts falling inside [LunchStart, LunchEnd) are skipped without
// re-anchoring the grid, so slots resume on the same grid after lunch
// even when the lunch boundaries are not grid-aligned.
//
// A malformed rule (inverted interval, non-positive slot size,
// unparseable time) yields an empty grid rather than an error; callers
// that need strictness run ValidateRule first.
func Generate(rule *domain.WorkHourRule) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if rule == nil {
		return slots
	}

	start, err := rule.StartTime.Minutes()
	if err != nil {
		return slots
	}
	end, err := rule.EndTime.Minutes()
	if err != nil {
		return slots
	}
	if rule.SlotMinutes <= 0 || end <= start {
		return slots
	}

	lunchStart, lunchEnd, hasLunch := lunchInterval(rule)

	for t := start; t < end; t += rule.SlotMinutes {
		if hasLunch && t >= lunchStart && t < lunchEnd {
			continue
		}
		slots = append(slots, minutesToTime(t))
	}

	return slots
}

// ValidateRule checks the rule invariants that Generate silently
// tolerates. Used by the write path so malformed rules are rejected on
// entry instead of surfacing as mysteriously empty schedules.
func ValidateRule(rule *domain.WorkHourRule) error {
	start, err := rule.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidTimeFormat, err)
	}
	end, err := rule.EndTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidTimeFormat, err)
	}
	if end <= start {
		return fmt.Errorf("%w: end time %s is not after start time %s", ErrInvalidRule, rule.EndTime, rule.StartTime)
	}
	if rule.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slot minutes must be positive, got %d", ErrInvalidRule, rule.SlotMinutes)
	}

	if rule.LunchStart == nil && rule.LunchEnd == nil {
		return nil
	}
	if rule.LunchStart == nil || rule.LunchEnd == nil {
		return fmt.Errorf("%w: lunch interval must set both start and end", ErrInvalidRule)
	}

	ls, err := rule.LunchStart.Minutes()
	if err != nil {
		return fmt.Errorf("%w: lunch start: %v", ErrInvalidTimeFormat, err)
	}
	le, err := rule.LunchEnd.Minutes()
	if err != nil {
		return fmt.Errorf("%w: lunch end: %v", ErrInvalidTimeFormat, err)
	}
	if ls >= le {
		return fmt.Errorf("%w: lunch end %s is not after lunch start %s", ErrInvalidRule, *rule.LunchEnd, *rule.LunchStart)
	}
	if ls < start || le > end {
		return fmt.Errorf("%w: lunch interval %s-%s is outside work hours %s-%s",
			ErrInvalidRule, *rule.LunchStart, *rule.LunchEnd, rule.StartTime, rule.EndTime)
	}

	return nil
}

// lunchInterval returns the lunch bounds in minutes-since-midnight.
// An unparseable or half-defined lunch interval is treated as absent,
// matching Generate's permissive contract.
func lunchInterval(rule *domain.WorkHourRule) (start, end int, ok bool) {
	if !rule.HasLunchBreak() {
		return 0, 0, false
	}
	start, err := rule.LunchStart.Minutes()
	if err != nil {
		return 0, 0, false
	}
	end, err = rule.LunchEnd.Minutes()
	if err != nil {
		return 0, 0, false
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func minutesToTime(m int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}
