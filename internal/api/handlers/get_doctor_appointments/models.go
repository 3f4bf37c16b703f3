package get_doctor_appointments

import (
	"net/url"
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/internal/service/appointments/models"
)

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// AppointmentResponse is one appointment in the listing
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	DoctorID           int64   `json:"doctorId"`
	PatientID          int64   `json:"patientId"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ToServiceRequest builds the service request from URL and query data
func ToServiceRequest(doctorID int64, query url.Values) (*models.GetDoctorAppointmentsRequest, error) {
	req := &models.GetDoctorAppointmentsRequest{
		DoctorID:         doctorID,
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}

// FromServiceResponse converts the service response to the HTTP model
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	appointments := make([]AppointmentResponse, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		appointments[i] = AppointmentResponse{
			ID:                 appt.ID,
			DoctorID:           appt.DoctorID,
			PatientID:          appt.PatientID,
			Date:               appt.Date.Format(domain.DateFormat),
			StartTime:          appt.StartTime,
			Status:             appt.Status,
			Notes:              appt.Notes,
			CancellationReason: appt.CancellationReason,
			CreatedAt:          appt.CreatedAt.Format(time.RFC3339),
			UpdatedAt:          appt.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &AppointmentListResponse{
		Appointments: appointments,
		Total:        resp.Total,
	}
}
