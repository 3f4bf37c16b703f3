package create_work_hours

import (
	"errors"
	"net/http"

	"github.com/medagenda/scheduling-service/internal/api/handlers"
	"github.com/medagenda/scheduling-service/internal/service/workhours"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRule        = "work-hour rule violates its constraints"
	msgInvalidInput       = "invalid work-hour rule data"
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

// Handle POST /api/v1/work-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WorkHourRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /work-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, workhours.ErrInvalidRule):
			h.logger.Warn("POST /work-hours - Invalid rule: doctor_id=%d, error=%v", req.DoctorID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, workhours.ErrInvalidInput):
			h.logger.Warn("POST /work-hours - Invalid input: doctor_id=%d, error=%v", req.DoctorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /work-hours - Failed to create rule: doctor_id=%d, error=%v", req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("POST /work-hours - Rule created: rule_id=%d, doctor_id=%d", result.ID, req.DoctorID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
