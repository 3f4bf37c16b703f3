package update_work_hours

import (
	"context"

	"github.com/medagenda/scheduling-service/internal/service/workhours/models"
)

type WorkHoursService interface {
	Update(ctx context.Context, id int64, req *models.SaveWorkHourRuleRequest) (*models.WorkHourRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
