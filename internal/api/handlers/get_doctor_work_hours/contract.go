package get_doctor_work_hours

import (
	"context"

	"github.com/medagenda/scheduling-service/internal/service/workhours/models"
)

type WorkHoursService interface {
	GetByDoctor(ctx context.Context, doctorID int64) (*models.WorkHourRuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
