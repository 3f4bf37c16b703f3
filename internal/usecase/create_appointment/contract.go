package create_appointment

import (
	"context"
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/internal/integrations/doctorservice"
	"github.com/medagenda/scheduling-service/internal/integrations/whatsappbridge"
)

// AppointmentRepository persists appointments
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByDoctorWithFilter(ctx context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error)
}

// WorkHoursRepository provides the doctor's work-hour rules
type WorkHoursRepository interface {
	GetByDoctor(ctx context.Context, doctorID int64) ([]*domain.WorkHourRule, error)
}

// DoctorServiceClient validates the doctor against the clinic directory
type DoctorServiceClient interface {
	GetDoctor(ctx context.Context, doctorID int64) (*doctorservice.Doctor, error)
}

// Notifier enqueues the booking confirmation message
type Notifier interface {
	SendAppointmentConfirmation(ctx context.Context, msg *whatsappbridge.ConfirmationMessage) error
}

// TransactionManager runs the availability re-check and insert in one
// serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the use case depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
