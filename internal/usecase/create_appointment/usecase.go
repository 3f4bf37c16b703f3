package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/medagenda/scheduling-service/internal/domain"
	appointmentRepo "github.com/medagenda/scheduling-service/internal/infra/storage/appointment"
	doctorClient "github.com/medagenda/scheduling-service/internal/integrations/doctorservice"
	"github.com/medagenda/scheduling-service/internal/integrations/whatsappbridge"
	"github.com/medagenda/scheduling-service/internal/scheduling"
)

// UseCase books an appointment. The availability engine's output is
// advisory; this use case owns the authoritative check, re-validating
// the slot inside a serializable transaction with the day's
// appointments locked, backed by the uniqueness guard in storage.
type UseCase struct {
	appointmentRepo AppointmentRepository
	workHoursRepo   WorkHoursRepository
	doctorClient    DoctorServiceClient
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	workHoursRepo WorkHoursRepository,
	doctorClient DoctorServiceClient,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		workHoursRepo:   workHoursRepo,
		doctorClient:    doctorClient,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute performs the booking
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: doctor=%d, patient=%d, date=%s, time=%s",
		req.DoctorID, req.PatientID, req.Date.Format(domain.DateFormat), req.StartTime)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	doctor, err := uc.doctorClient.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorClient.ErrDoctorNotFound) {
			uc.logger.Warn("CreateAppointment: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	status := domain.StatusScheduled
	if req.PreScheduled {
		status = domain.StatusPreScheduled
	}

	var created *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rules, err := uc.workHoursRepo.GetByDoctor(txCtx, req.DoctorID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get work hours: %v", err)
			return fmt.Errorf("%w: failed to get work hours: %v", ErrInternal, err)
		}

		rule, working := scheduling.Resolve(rules, req.DoctorID, req.Date)
		if !working {
			uc.logger.Warn("CreateAppointment: doctor=%d does not attend on %s",
				req.DoctorID, req.Date.Format(domain.DateFormat))
			return ErrDoctorNotWorking
		}

		if err := scheduling.ValidateRule(rule); err != nil {
			// A malformed rule means nothing on this date is bookable;
			// flag the data defect and refuse the slot.
			uc.logger.Error("CreateAppointment: malformed work-hour rule id=%d for doctor=%d: %v",
				rule.ID, req.DoctorID, err)
			return ErrDoctorNotWorking
		}

		if !onGrid(scheduling.Generate(rule), req.StartTime) {
			uc.logger.Warn("CreateAppointment: time %s is not on the slot grid for doctor=%d",
				req.StartTime, req.DoctorID)
			return ErrInvalidTimeSlot
		}

		// Lock the day's appointments and re-check occupancy
		filter := domain.DoctorAppointmentsFilter{
			DoctorID:         req.DoctorID,
			StartDate:        &req.Date,
			EndDate:          &req.Date,
			IncludeCancelled: false,
		}

		appointments, err := uc.appointmentRepo.GetByDoctorWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if _, taken := scheduling.BookedTimes(appointments)[req.StartTime]; taken {
			uc.logger.Warn("CreateAppointment: slot %s already taken for doctor=%d on %s",
				req.StartTime, req.DoctorID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		appt := &domain.Appointment{
			DoctorID:  req.DoctorID,
			PatientID: req.PatientID,
			Date:      req.Date,
			StartTime: req.StartTime,
			Status:    status,
			Notes:     req.Notes,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, doctor=%d, patient=%d",
		created.ID, created.DoctorID, created.PatientID)

	// Confirmation delivery must never fail the booking
	uc.notify(ctx, created, doctor.FullName)

	return &Response{
		ID:        created.ID,
		DoctorID:  created.DoctorID,
		PatientID: created.PatientID,
		Date:      created.Date,
		StartTime: created.StartTime,
		Status:    string(created.Status),
		Notes:     created.Notes,
		CreatedAt: created.CreatedAt,
		UpdatedAt: created.UpdatedAt,
	}, nil
}

func (uc *UseCase) notify(ctx context.Context, appt *domain.Appointment, doctorName string) {
	msg := &whatsappbridge.ConfirmationMessage{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorName:    doctorName,
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime.String(),
	}

	if err := uc.notifier.SendAppointmentConfirmation(ctx, msg); err != nil {
		uc.logger.Warn("CreateAppointment: failed to enqueue confirmation for appointment=%d: %v",
			appt.ID, err)
	}
}
