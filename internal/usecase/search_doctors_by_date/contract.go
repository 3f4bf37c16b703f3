package search_doctors_by_date

import (
	"context"
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
)

// WorkHoursRepository provides candidate rules for a date
type WorkHoursRepository interface {
	// GetAllForDate returns every doctor's rules that could apply to
	// the date, grouped by doctor in resolution order
	GetAllForDate(ctx context.Context, date time.Time) ([]*domain.WorkHourRule, error)
}

// AppointmentRepository provides appointments per doctor
type AppointmentRepository interface {
	GetByDoctorWithFilter(ctx context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger is the logging interface the use case depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
