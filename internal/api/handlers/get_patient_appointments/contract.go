package get_patient_appointments

import (
	"context"

	"github.com/medagenda/scheduling-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByPatient(ctx context.Context, patientID int64, status *string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
