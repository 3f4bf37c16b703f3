package create_work_hours

import (
	"context"

	"github.com/medagenda/scheduling-service/internal/service/workhours/models"
)

type WorkHoursService interface {
	Create(ctx context.Context, req *models.SaveWorkHourRuleRequest) (*models.WorkHourRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
