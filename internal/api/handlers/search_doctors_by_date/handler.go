package search_doctors_by_date

import (
	"errors"
	"net/http"

	"github.com/medagenda/scheduling-service/internal/api/handlers"
	searchDoctorsByDate "github.com/medagenda/scheduling-service/internal/usecase/search_doctors_by_date"
)

const (
	msgMissingDate = "date is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase SearchDoctorsByDateUseCase
	logger  Logger
}

func NewHandler(useCase SearchDoctorsByDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/available-by-date
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /doctors/available-by-date - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /doctors/available-by-date - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchDoctorsByDate.ErrInvalidInput):
			h.logger.Warn("GET /doctors/available-by-date - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /doctors/available-by-date - Failed to search doctors: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /doctors/available-by-date - Doctors retrieved: date=%s, doctors_count=%d",
		dateStr, len(result.Doctors))
	handlers.RespondJSON(w, http.StatusOK, response)
}
