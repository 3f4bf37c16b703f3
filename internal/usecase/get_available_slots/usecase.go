package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/internal/infra/storage/appointment"
	"github.com/medagenda/scheduling-service/internal/scheduling"
	"github.com/medagenda/scheduling-service/pkg/types"
)

// UseCase computes a doctor's annotated slot list for one date.
// It is a thin caller around the scheduling engine: fetch rules,
// resolve, generate, fetch same-day appointments, annotate.
type UseCase struct {
	workHoursRepo   WorkHoursRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(
	workHoursRepo WorkHoursRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		workHoursRepo:   workHoursRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute runs the availability query. The output is advisory for UI
// purposes; the authoritative collision check happens at insert time.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%d, date=%s",
		req.DoctorID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	rules, err := uc.workHoursRepo.GetByDoctor(ctx, req.DoctorID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get work hours for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get work hours: %v", ErrInternal, err)
	}

	rule, working := scheduling.Resolve(rules, req.DoctorID, req.Date)
	if !working {
		uc.logger.Info("GetAvailableSlots: doctor=%d does not attend on %s",
			req.DoctorID, req.Date.Format(domain.DateFormat))
		return &Response{
			DoctorID: req.DoctorID,
			Date:     req.Date,
			Working:  false,
			Slots:    []domain.Slot{},
		}, nil
	}

	// Malformed stored rules degrade to an empty grid for the UI, but
	// they indicate a data-entry defect upstream, so flag them loudly.
	if err := scheduling.ValidateRule(rule); err != nil {
		uc.logger.Error("GetAvailableSlots: malformed work-hour rule id=%d for doctor=%d: %v",
			rule.ID, req.DoctorID, err)
	}

	times := scheduling.Generate(rule)

	filter := domain.DoctorAppointmentsFilter{
		DoctorID:         req.DoctorID,
		StartDate:        &req.Date,
		EndDate:          &req.Date,
		IncludeCancelled: false,
	}

	appointments, err := uc.appointmentRepo.GetByDoctorWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	preserve, err := uc.preserveTime(ctx, req)
	if err != nil {
		return nil, err
	}

	slots := scheduling.Annotate(times, scheduling.BookedTimes(appointments), preserve)

	uc.logger.Info("GetAvailableSlots: doctor=%d, date=%s, slots=%d",
		req.DoctorID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Working:  true,
		Slots:    slots,
	}, nil
}

// preserveTime resolves ExcludeAppointmentID into the time that must
// stay available to its own reschedule form. An appointment on another
// doctor or date contributes nothing.
func (uc *UseCase) preserveTime(ctx context.Context, req *Request) (*types.TimeString, error) {
	if req.ExcludeAppointmentID == nil {
		return nil, nil
	}

	appt, err := uc.appointmentRepo.GetByID(ctx, *req.ExcludeAppointmentID)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			uc.logger.Warn("GetAvailableSlots: exclude appointment id=%d not found", *req.ExcludeAppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get appointment id=%d: %v", *req.ExcludeAppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if appt.DoctorID != req.DoctorID || !sameDay(appt.Date, req.Date) {
		return nil, nil
	}

	t := appt.StartTime
	return &t, nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
