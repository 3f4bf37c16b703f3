package models

import (
	"fmt"
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
)

// GetDoctorAppointmentsRequest filters a doctor's appointment listing
type GetDoctorAppointmentsRequest struct {
	DoctorID         int64
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter converts the request into the repository filter
func (r *GetDoctorAppointmentsRequest) ToDomainFilter() (domain.DoctorAppointmentsFilter, error) {
	filter := domain.DoctorAppointmentsFilter{
		DoctorID:         r.DoctorID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return domain.DoctorAppointmentsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelAppointmentRequest carries the cancellation reason
type CancelAppointmentRequest struct {
	Reason string
}

// UpdateStatusRequest carries the requested status change
type UpdateStatusRequest struct {
	Status string
}

// AppointmentResponse is the service-level appointment view
type AppointmentResponse struct {
	ID                 int64
	DoctorID           int64
	PatientID          int64
	Date               time.Time
	StartTime          string
	Status             string
	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AppointmentListResponse wraps a listing
type AppointmentListResponse struct {
	Appointments []AppointmentResponse
	Total        int
}

// FromDomainAppointment converts a domain appointment
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 appt.ID,
		DoctorID:           appt.DoctorID,
		PatientID:          appt.PatientID,
		Date:               appt.Date,
		StartTime:          appt.StartTime.String(),
		Status:             string(appt.Status),
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        appt.CancelledAt,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a domain appointment slice
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, len(appointments))
	for i, appt := range appointments {
		result[i] = *FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainStatus parses a status string
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !domain.IsValidStatus(status) {
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
	return status, nil
}
