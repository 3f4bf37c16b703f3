package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/internal/infra/storage/appointment"
	"github.com/medagenda/scheduling-service/pkg/ptr"
	"github.com/medagenda/scheduling-service/pkg/types"
)

type stubWorkHoursRepo struct {
	rules []*domain.WorkHourRule
	err   error
}

func (s *stubWorkHoursRepo) GetByDoctor(_ context.Context, _ int64) ([]*domain.WorkHourRule, error) {
	return s.rules, s.err
}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	byID         map[int64]*domain.Appointment
	err          error
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	appt, ok := s.byID[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	return appt, nil
}

func (s *stubAppointmentRepo) GetByDoctorWithFilter(_ context.Context, _ domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mondayRule(doctorID int64) *domain.WorkHourRule {
	return &domain.WorkHourRule{
		ID:          1,
		DoctorID:    doctorID,
		Weekday:     ptr.Ptr(1),
		StartTime:   "09:00",
		EndTime:     "11:00",
		SlotMinutes: 30,
	}
}

func booked(doctorID int64, day time.Time, at string) *domain.Appointment {
	return &domain.Appointment{
		ID:        100,
		DoctorID:  doctorID,
		PatientID: 55,
		Date:      day,
		StartTime: types.TimeString(at),
		Status:    domain.StatusScheduled,
	}
}

func TestExecute_MarksBookedSlotsUnavailable(t *testing.T) {
	// 2026-09-07 is a Monday
	day := date(2026, time.September, 7)

	uc := NewUseCase(
		&stubWorkHoursRepo{rules: []*domain.WorkHourRule{mondayRule(42)}},
		&stubAppointmentRepo{appointments: []*domain.Appointment{booked(42, day, "09:30")}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 42, Date: day})
	require.NoError(t, err)

	require.True(t, resp.Working)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, domain.Slot{Time: "09:00", Available: true}, resp.Slots[0])
	assert.Equal(t, domain.Slot{Time: "09:30", Available: false}, resp.Slots[1])
	assert.Equal(t, domain.Slot{Time: "10:00", Available: true}, resp.Slots[2])
	assert.Equal(t, domain.Slot{Time: "10:30", Available: true}, resp.Slots[3])
}

func TestExecute_NotWorkingDay(t *testing.T) {
	// 2026-09-08 is a Tuesday, the rule covers Mondays only
	day := date(2026, time.September, 8)

	uc := NewUseCase(
		&stubWorkHoursRepo{rules: []*domain.WorkHourRule{mondayRule(42)}},
		&stubAppointmentRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 42, Date: day})
	require.NoError(t, err)

	assert.False(t, resp.Working)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ExcludedAppointmentStaysAvailable(t *testing.T) {
	day := date(2026, time.September, 7)
	existing := booked(42, day, "09:30")

	uc := NewUseCase(
		&stubWorkHoursRepo{rules: []*domain.WorkHourRule{mondayRule(42)}},
		&stubAppointmentRepo{
			appointments: []*domain.Appointment{existing},
			byID:         map[int64]*domain.Appointment{existing.ID: existing},
		},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID:             42,
		Date:                 day,
		ExcludeAppointmentID: ptr.Ptr(existing.ID),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, domain.Slot{Time: "09:30", Available: true}, resp.Slots[1])
}

func TestExecute_ExcludedAppointmentOnOtherDateIgnored(t *testing.T) {
	day := date(2026, time.September, 7)
	otherDay := booked(42, date(2026, time.September, 14), "09:30")
	sameDayBooking := booked(42, day, "10:00")
	sameDayBooking.ID = 101

	uc := NewUseCase(
		&stubWorkHoursRepo{rules: []*domain.WorkHourRule{mondayRule(42)}},
		&stubAppointmentRepo{
			appointments: []*domain.Appointment{sameDayBooking},
			byID:         map[int64]*domain.Appointment{otherDay.ID: otherDay},
		},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID:             42,
		Date:                 day,
		ExcludeAppointmentID: ptr.Ptr(otherDay.ID),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, domain.Slot{Time: "10:00", Available: false}, resp.Slots[2])
}

func TestExecute_ExcludedAppointmentNotFound(t *testing.T) {
	day := date(2026, time.September, 7)

	uc := NewUseCase(
		&stubWorkHoursRepo{rules: []*domain.WorkHourRule{mondayRule(42)}},
		&stubAppointmentRepo{byID: map[int64]*domain.Appointment{}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		DoctorID:             42,
		Date:                 day,
		ExcludeAppointmentID: ptr.Ptr(int64(999)),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubWorkHoursRepo{}, &stubAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 0, Date: date(2026, time.September, 7)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	uc := NewUseCase(
		&stubWorkHoursRepo{err: errors.New("connection refused")},
		&stubAppointmentRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 42, Date: date(2026, time.September, 7)})
	assert.ErrorIs(t, err, ErrInternal)
}
