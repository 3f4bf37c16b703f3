package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/pkg/ptr"
	"github.com/medagenda/scheduling-service/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recurringRule(id, doctorID int64, weekday int, start, end string, slotMinutes int) *domain.WorkHourRule {
	return &domain.WorkHourRule{
		ID:          id,
		DoctorID:    doctorID,
		Weekday:     ptr.Ptr(weekday),
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		SlotMinutes: slotMinutes,
	}
}

func specificRule(id, doctorID int64, day time.Time, start, end string, slotMinutes int) *domain.WorkHourRule {
	return &domain.WorkHourRule{
		ID:           id,
		DoctorID:     doctorID,
		SpecificDate: ptr.Ptr(day),
		StartTime:    types.TimeString(start),
		EndTime:      types.TimeString(end),
		SlotMinutes:  slotMinutes,
	}
}

func TestResolve_SpecificDateWinsOverWeekday(t *testing.T) {
	// 2024-12-25 is a Wednesday (weekday 3)
	day := date(2024, time.December, 25)
	rules := []*domain.WorkHourRule{
		recurringRule(1, 10, 3, "08:00", "18:00", 30),
		specificRule(2, 10, day, "09:00", "10:00", 60),
	}

	rule, working := Resolve(rules, 10, day)
	require.True(t, working)
	assert.Equal(t, int64(2), rule.ID)
}

func TestResolve_ScenarioE_OverrideYieldsSingleSlot(t *testing.T) {
	day := date(2024, time.December, 25)
	rules := []*domain.WorkHourRule{
		specificRule(1, 7, day, "09:00", "10:00", 60),
		recurringRule(2, 7, int(day.Weekday()), "08:00", "18:00", 30),
	}

	rule, working := Resolve(rules, 7, day)
	require.True(t, working)

	slots := Generate(rule)
	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
}

func TestResolve_FallsBackToWeekday(t *testing.T) {
	// 2025-06-02 is a Monday (weekday 1)
	day := date(2025, time.June, 2)
	rules := []*domain.WorkHourRule{
		specificRule(1, 10, date(2025, time.June, 9), "07:00", "08:00", 30),
		recurringRule(2, 10, 1, "08:00", "12:00", 30),
	}

	rule, working := Resolve(rules, 10, day)
	require.True(t, working)
	assert.Equal(t, int64(2), rule.ID)
}

func TestResolve_NotWorkingWhenNoRuleMatches(t *testing.T) {
	// Sunday, doctor only works Mondays
	day := date(2025, time.June, 1)
	rules := []*domain.WorkHourRule{
		recurringRule(1, 10, 1, "08:00", "12:00", 30),
	}

	rule, working := Resolve(rules, 10, day)
	assert.False(t, working)
	assert.Nil(t, rule)

	// Not-working propagates as empty output through the pipeline
	slots := Generate(rule)
	assert.Empty(t, slots)
	assert.Empty(t, Annotate(slots, nil, nil))
}

func TestResolve_IgnoresOtherDoctors(t *testing.T) {
	day := date(2025, time.June, 2)
	rules := []*domain.WorkHourRule{
		recurringRule(1, 99, 1, "08:00", "12:00", 30),
	}

	_, working := Resolve(rules, 10, day)
	assert.False(t, working)
}

func TestResolve_DuplicateWeekdayRulesFirstMatchWins(t *testing.T) {
	// Duplicate recurring rules for the same weekday are an upstream
	// data inconsistency; resolution stays deterministic on input order.
	day := date(2025, time.June, 2)
	rules := []*domain.WorkHourRule{
		recurringRule(5, 10, 1, "08:00", "12:00", 30),
		recurringRule(6, 10, 1, "14:00", "18:00", 30),
	}

	rule, working := Resolve(rules, 10, day)
	require.True(t, working)
	assert.Equal(t, int64(5), rule.ID)
}

func TestResolve_SundayIsWeekdayZero(t *testing.T) {
	day := date(2025, time.June, 1) // Sunday
	rules := []*domain.WorkHourRule{
		recurringRule(1, 10, 0, "10:00", "12:00", 30),
	}

	rule, working := Resolve(rules, 10, day)
	require.True(t, working)
	assert.Equal(t, int64(1), rule.ID)
}
