package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/scheduling-service/internal/domain"
	appointmentRepo "github.com/medagenda/scheduling-service/internal/infra/storage/appointment"
	"github.com/medagenda/scheduling-service/internal/integrations/doctorservice"
	"github.com/medagenda/scheduling-service/internal/integrations/whatsappbridge"
	"github.com/medagenda/scheduling-service/pkg/ptr"
	"github.com/medagenda/scheduling-service/pkg/types"
)

type stubAppointments struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (s *stubAppointments) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *appt
	created.ID = 777
	s.created = &created
	return &created, nil
}

func (s *stubAppointments) GetByDoctorWithFilter(_ context.Context, _ domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.existing, nil
}

type stubWorkHours struct {
	rules []*domain.WorkHourRule
}

func (s *stubWorkHours) GetByDoctor(_ context.Context, _ int64) ([]*domain.WorkHourRule, error) {
	return s.rules, nil
}

type stubDoctors struct {
	err error
}

func (s *stubDoctors) GetDoctor(_ context.Context, doctorID int64) (*doctorservice.Doctor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &doctorservice.Doctor{ID: doctorID, FullName: "Dr. Ana Souza"}, nil
}

type stubNotifier struct {
	sent []*whatsappbridge.ConfirmationMessage
	err  error
}

func (s *stubNotifier) SendAppointmentConfirmation(_ context.Context, msg *whatsappbridge.ConfirmationMessage) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

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
		EndTime:     "12:00",
		SlotMinutes: 30,
	}
}

func newTestUseCase(
	appts *stubAppointments,
	workHours *stubWorkHours,
	doctors *stubDoctors,
	notifier *stubNotifier,
) *UseCase {
	uc := NewUseCase(appts, workHours, doctors, notifier, inlineTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: date(2026, time.September, 1)}
	return uc
}

func validRequest() *Request {
	// 2026-09-07 is a Monday
	return &Request{
		DoctorID:  42,
		PatientID: 55,
		Date:      date(2026, time.September, 7),
		StartTime: "09:30",
	}
}

func TestExecute_BooksFreeSlot(t *testing.T) {
	appts := &stubAppointments{}
	notifier := &stubNotifier{}
	uc := newTestUseCase(appts, &stubWorkHours{rules: []*domain.WorkHourRule{mondayRule(42)}}, &stubDoctors{}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(777), resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "09:30", notifier.sent[0].StartTime)
	assert.Equal(t, "Dr. Ana Souza", notifier.sent[0].DoctorName)
}

func TestExecute_PreScheduledStatus(t *testing.T) {
	appts := &stubAppointments{}
	uc := newTestUseCase(appts, &stubWorkHours{rules: []*domain.WorkHourRule{mondayRule(42)}}, &stubDoctors{}, &stubNotifier{})

	req := validRequest()
	req.PreScheduled = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPreScheduled), resp.Status)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	appts := &stubAppointments{
		existing: []*domain.Appointment{{
			DoctorID:  42,
			Date:      date(2026, time.September, 7),
			StartTime: types.TimeString("09:30"),
			Status:    domain.StatusScheduled,
		}},
	}
	uc := newTestUseCase(appts, &stubWorkHours{rules: []*domain.WorkHourRule{mondayRule(42)}}, &stubDoctors{}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	appts := &stubAppointments{
		existing: []*domain.Appointment{{
			DoctorID:  42,
			Date:      date(2026, time.September, 7),
			StartTime: types.TimeString("09:30"),
			Status:    domain.StatusCancelled,
		}},
	}
	uc := newTestUseCase(appts, &stubWorkHours{rules: []*domain.WorkHourRule{mondayRule(42)}}, &stubDoctors{}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_UniqueIndexViolationMapsToSlotNotAvailable(t *testing.T) {
	appts := &stubAppointments{createErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(appts, &stubWorkHours{rules: []*domain.WorkHourRule{mondayRule(42)}}, &stubDoctors{}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	uc := newTestUseCase(&stubAppointments{}, &stubWorkHours{rules: []*domain.WorkHourRule{mondayRule(42)}}, &stubDoctors{}, &stubNotifier{})

	req := validRequest()
	req.StartTime = "09:45"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_DoctorNotWorking(t *testing.T) {
	uc := newTestUseCase(&stubAppointments{}, &stubWorkHours{rules: []*domain.WorkHourRule{mondayRule(42)}}, &stubDoctors{}, &stubNotifier{})

	req := validRequest()
	req.Date = date(2026, time.September, 8) // Tuesday

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDoctorNotWorking)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := newTestUseCase(&stubAppointments{}, &stubWorkHours{}, &stubDoctors{err: doctorservice.ErrDoctorNotFound}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&stubAppointments{}, &stubWorkHours{rules: []*domain.WorkHourRule{mondayRule(42)}}, &stubDoctors{}, &stubNotifier{})

	req := validRequest()
	req.Date = date(2026, time.August, 31)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_NotifierFailureDoesNotFailBooking(t *testing.T) {
	appts := &stubAppointments{}
	notifier := &stubNotifier{err: whatsappbridge.ErrBridgeUnavailable}
	uc := newTestUseCase(appts, &stubWorkHours{rules: []*domain.WorkHourRule{mondayRule(42)}}, &stubDoctors{}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(777), resp.ID)
}

func TestExecute_MalformedRuleRefusesBooking(t *testing.T) {
	broken := mondayRule(42)
	broken.StartTime = "12:00"
	broken.EndTime = "09:00"

	uc := newTestUseCase(&stubAppointments{}, &stubWorkHours{rules: []*domain.WorkHourRule{broken}}, &stubDoctors{}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoctorNotWorking)
}
