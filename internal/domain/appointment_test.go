package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupiesSlot(t *testing.T) {
	for _, status := range []AppointmentStatus{
		StatusPreScheduled, StatusScheduled, StatusConfirmed, StatusCompleted, StatusNoShow,
	} {
		appt := Appointment{Status: status}
		assert.True(t, appt.OccupiesSlot(), "status %s should occupy its slot", status)
	}

	cancelled := Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.OccupiesSlot())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPreScheduled, StatusScheduled, true},
		{StatusPreScheduled, StatusCancelled, true},
		{StatusPreScheduled, StatusCompleted, false},
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusNoShow, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusPreScheduled, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusScheduled, false},
		// reversals correct clerical mistakes
		{StatusCompleted, StatusScheduled, true},
		{StatusNoShow, StatusScheduled, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusScheduled, false},
	}

	for _, tt := range tests {
		appt := Appointment{Status: tt.from}
		assert.Equal(t, tt.allowed, appt.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestCanBeCancelled(t *testing.T) {
	tests := []struct {
		status  AppointmentStatus
		allowed bool
	}{
		{StatusPreScheduled, true},
		{StatusScheduled, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		appt := Appointment{Status: tt.status}
		assert.Equal(t, tt.allowed, appt.CanBeCancelled(), "status %s", tt.status)
	}
}
