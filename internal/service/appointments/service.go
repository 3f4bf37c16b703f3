package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/medagenda/scheduling-service/internal/domain"
	appointmentRepo "github.com/medagenda/scheduling-service/internal/infra/storage/appointment"
	"github.com/medagenda/scheduling-service/internal/service/appointments/models"
)

// Service handles appointment reads and lifecycle changes
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates the appointments service
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID fetches an appointment
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetByDoctor lists a doctor's appointments with optional period and
// status filtering
func (s *Service) GetByDoctor(ctx context.Context, req *models.GetDoctorAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByDoctor: fetching appointments for doctor=%d", req.DoctorID)

	if req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetByDoctor: invalid filter for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	appointments, err := s.appointmentRepo.GetByDoctorWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByDoctor: repository error for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: GetByDoctor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDoctor: fetched %d appointments for doctor=%d", len(appointments), req.DoctorID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetByPatient lists a patient's appointment history
func (s *Service) GetByPatient(ctx context.Context, patientID int64, status *string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByPatient: fetching appointments for patient=%d", patientID)

	if patientID <= 0 {
		return nil, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	var domainStatus *domain.AppointmentStatus
	if status != nil {
		parsed, err := models.ToDomainStatus(*status)
		if err != nil {
			s.logger.Warn("GetByPatient: invalid status=%s for patient=%d", *status, patientID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		domainStatus = &parsed
	}

	appointments, err := s.appointmentRepo.GetByPatient(ctx, patientID, domainStatus)
	if err != nil {
		s.logger.Error("GetByPatient: repository error for patient=%d: %v", patientID, err)
		return nil, fmt.Errorf("%w: GetByPatient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPatient: fetched %d appointments for patient=%d", len(appointments), patientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel cancels an appointment with a reason. Only non-terminal
// appointments can be cancelled.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.Reason); err != nil {
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return nil
}

// UpdateStatus moves the appointment along its lifecycle:
// PRE_SCHEDULED -> SCHEDULED -> CONFIRMED -> COMPLETED | NO_SHOW, plus
// the reversal COMPLETED/NO_SHOW -> SCHEDULED. Cancellation goes
// through Cancel, which also records the reason.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> %s", id, req.Status)

	next, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !appt.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d",
			appt.Status, next, id)
		return nil, ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, next); err != nil {
		s.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appt.Status = next
	s.logger.Info("UpdateStatus: appointment id=%d now %s", id, next)
	return models.FromDomainAppointment(appt), nil
}
