package get_doctor_work_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/medagenda/scheduling-service/internal/api/handlers"
	"github.com/medagenda/scheduling-service/internal/service/workhours"
)

const (
	msgInvalidDoctorID = "invalid doctor ID"
)

type Handler struct {
	service WorkHoursService
	logger  Logger
}

func NewHandler(service WorkHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/work-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorIDStr := vars["doctorId"]

	doctorID, err := strconv.ParseInt(doctorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/work-hours - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	result, err := h.service.GetByDoctor(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, workhours.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/work-hours - Invalid input: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidDoctorID)

		default:
			h.logger.Error("GET /doctors/{id}/work-hours - Failed to get rules: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /doctors/{id}/work-hours - Rules retrieved: doctor_id=%d, count=%d", doctorID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
