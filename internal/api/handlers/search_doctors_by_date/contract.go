package search_doctors_by_date

import (
	"context"

	searchDoctorsByDate "github.com/medagenda/scheduling-service/internal/usecase/search_doctors_by_date"
)

type SearchDoctorsByDateUseCase interface {
	Execute(ctx context.Context, req *searchDoctorsByDate.Request) (*searchDoctorsByDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
