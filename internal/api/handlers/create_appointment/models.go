package create_appointment

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
	createAppointment "github.com/medagenda/scheduling-service/internal/usecase/create_appointment"
	"github.com/medagenda/scheduling-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	DoctorID     int64   `json:"doctorId"`
	PatientID    int64   `json:"patientId"`
	Date         string  `json:"date"`      // "2026-09-15"
	StartTime    string  `json:"startTime"` // "10:00"
	Notes        *string `json:"notes,omitempty"`
	PreScheduled bool    `json:"preScheduled,omitempty"`
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
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		DoctorID:     r.DoctorID,
		PatientID:    r.PatientID,
		Date:         date,
		StartTime:    startTime,
		Notes:        r.Notes,
		PreScheduled: r.PreScheduled,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		DoctorID:  resp.DoctorID,
		PatientID: resp.PatientID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
