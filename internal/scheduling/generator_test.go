package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/pkg/ptr"
	"github.com/medagenda/scheduling-service/pkg/types"
)

func ruleWithLunch(start, end string, slotMinutes int, lunchStart, lunchEnd string) *domain.WorkHourRule {
	rule := &domain.WorkHourRule{
		DoctorID:    1,
		Weekday:     ptr.Ptr(1),
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		SlotMinutes: slotMinutes,
	}
	if lunchStart != "" {
		rule.LunchStart = ptr.Ptr(types.TimeString(lunchStart))
		rule.LunchEnd = ptr.Ptr(types.TimeString(lunchEnd))
	}
	return rule
}

func TestGenerate_MorningGrid(t *testing.T) {
	slots := Generate(ruleWithLunch("08:00", "12:00", 30, "", ""))

	expected := []types.TimeString{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	}
	assert.Equal(t, expected, slots)
}

func TestGenerate_LunchExclusion(t *testing.T) {
	slots := Generate(ruleWithLunch("08:00", "12:00", 30, "10:00", "10:30"))

	expected := []types.TimeString{
		"08:00", "08:30", "09:00", "09:30", "10:30", "11:00", "11:30",
	}
	assert.Equal(t, expected, slots)
	assert.NotContains(t, slots, types.TimeString("10:00"))
}

func TestGenerate_Deterministic(t *testing.T) {
	rule := ruleWithLunch("08:00", "17:00", 20, "12:00", "13:00")

	first := Generate(rule)
	second := Generate(rule)
	assert.Equal(t, first, second)
}

func TestGenerate_NoSlotStartsInsideLunch(t *testing.T) {
	rule := ruleWithLunch("08:00", "18:00", 30, "12:00", "13:30")
	slots := Generate(rule)

	for _, slot := range slots {
		m, err := slot.Minutes()
		require.NoError(t, err)
		assert.False(t, m >= 12*60 && m < 13*60+30, "slot %s starts inside lunch", slot)
	}
}

func TestGenerate_LunchNotGridAlignedKeepsAnchor(t *testing.T) {
	// Lunch 12:00-12:45 with 30-minute slots: 12:00 and 12:30 are
	// skipped, and the grid resumes at 13:00 - not at 12:45. The grid
	// stays anchored at the work start; there is no snap to lunch end.
	slots := Generate(ruleWithLunch("11:00", "14:00", 30, "12:00", "12:45"))

	expected := []types.TimeString{"11:00", "11:30", "13:00", "13:30"}
	assert.Equal(t, expected, slots)
}

func TestGenerate_LastSlotStrictlyBeforeEnd(t *testing.T) {
	// 09:00-10:45 with 30-minute slots: 10:30 starts before 10:45 and
	// is emitted even though it would run past the end of the day.
	slots := Generate(ruleWithLunch("09:00", "10:45", 30, "", ""))

	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}
	assert.Equal(t, expected, slots)

	for _, slot := range slots {
		assert.True(t, slot.IsBefore("10:45"))
	}
}

func TestGenerate_MalformedRuleYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		rule *domain.WorkHourRule
	}{
		{"nil rule", nil},
		{"inverted interval", ruleWithLunch("12:00", "08:00", 30, "", "")},
		{"zero-length interval", ruleWithLunch("08:00", "08:00", 30, "", "")},
		{"zero slot minutes", ruleWithLunch("08:00", "12:00", 0, "", "")},
		{"negative slot minutes", ruleWithLunch("08:00", "12:00", -15, "", "")},
		{"garbage start time", ruleWithLunch("notatime", "12:00", 30, "", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Generate(tt.rule))
		})
	}
}

func TestGenerate_BrokenLunchTreatedAsAbsent(t *testing.T) {
	slots := Generate(ruleWithLunch("08:00", "10:00", 30, "bogus", "09:00"))

	expected := []types.TimeString{"08:00", "08:30", "09:00", "09:30"}
	assert.Equal(t, expected, slots)
}

func TestGenerate_AcceptsSecondsInStoredTimes(t *testing.T) {
	// Times persisted as HH:MM:SS must produce the same grid
	slots := Generate(ruleWithLunch("08:00:00", "12:00:00", 30, "", ""))
	assert.Len(t, slots, 8)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name    string
		rule    *domain.WorkHourRule
		wantErr error
	}{
		{"valid", ruleWithLunch("08:00", "12:00", 30, "", ""), nil},
		{"valid with lunch", ruleWithLunch("08:00", "18:00", 30, "12:00", "13:00"), nil},
		{"inverted interval", ruleWithLunch("12:00", "08:00", 30, "", ""), ErrInvalidRule},
		{"zero slot minutes", ruleWithLunch("08:00", "12:00", 0, "", ""), ErrInvalidRule},
		{"bad start time", ruleWithLunch("8h00", "12:00", 30, "", ""), ErrInvalidTimeFormat},
		{"lunch outside work hours", ruleWithLunch("08:00", "12:00", 30, "12:30", "13:00"), ErrInvalidRule},
		{"inverted lunch", ruleWithLunch("08:00", "18:00", 30, "13:00", "12:00"), ErrInvalidRule},
		{"half-defined lunch", func() *domain.WorkHourRule {
			r := ruleWithLunch("08:00", "18:00", 30, "", "")
			r.LunchStart = ptr.Ptr(types.TimeString("12:00"))
			return r
		}(), ErrInvalidRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRule(tt.rule)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
