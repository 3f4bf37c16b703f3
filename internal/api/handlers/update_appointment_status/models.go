package update_appointment_status

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status: r.Status,
	}
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64   `json:"id"`
	DoctorID  int64   `json:"doctorId"`
	PatientID int64   `json:"patientId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	UpdatedAt string  `json:"updatedAt"`
}

// FromServiceResponse converts the service response to the HTTP model
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		DoctorID:  resp.DoctorID,
		PatientID: resp.PatientID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime,
		Status:    resp.Status,
		Notes:     resp.Notes,
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
