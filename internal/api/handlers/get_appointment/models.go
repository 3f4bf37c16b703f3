package get_appointment

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	DoctorID           int64   `json:"doctorId"`
	PatientID          int64   `json:"patientId"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse converts the service response to the HTTP model
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	result := &AppointmentResponse{
		ID:                 resp.ID,
		DoctorID:           resp.DoctorID,
		PatientID:          resp.PatientID,
		Date:               resp.Date.Format(domain.DateFormat),
		StartTime:          resp.StartTime,
		Status:             resp.Status,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		result.CancelledAt = &cancelledAt
	}

	return result
}
