package get_available_slots

import (
	"context"

	"github.com/medagenda/scheduling-service/internal/domain"
)

// WorkHoursRepository provides the doctor's work-hour rules
type WorkHoursRepository interface {
	// GetByDoctor returns the doctor's rules in resolution order
	GetByDoctor(ctx context.Context, doctorID int64) ([]*domain.WorkHourRule, error)
}

// AppointmentRepository provides the doctor's appointments
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByDoctorWithFilter(ctx context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger is the logging interface the use case depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
