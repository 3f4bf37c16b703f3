package workhours

import (
	"context"

	"github.com/medagenda/scheduling-service/internal/domain"
)

// WorkHoursRepository persists work-hour rules
type WorkHoursRepository interface {
	Create(ctx context.Context, rule *domain.WorkHourRule) (*domain.WorkHourRule, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkHourRule, error)
	GetByDoctor(ctx context.Context, doctorID int64) ([]*domain.WorkHourRule, error)
	Update(ctx context.Context, id int64, rule *domain.WorkHourRule) (*domain.WorkHourRule, error)
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface the service depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
