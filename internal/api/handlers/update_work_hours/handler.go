package update_work_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/medagenda/scheduling-service/internal/api/handlers"
	"github.com/medagenda/scheduling-service/internal/service/workhours"
)

const (
	msgInvalidRuleID      = "invalid rule ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "work-hour rule not found"
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

// Handle PUT /api/v1/work-hours/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ruleIDStr := vars["ruleId"]

	ruleID, err := strconv.ParseInt(ruleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /work-hours/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req WorkHourRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /work-hours/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), ruleID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, workhours.ErrRuleNotFound):
			h.logger.Warn("PUT /work-hours/{id} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, workhours.ErrInvalidRule):
			h.logger.Warn("PUT /work-hours/{id} - Invalid rule: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, workhours.ErrInvalidInput):
			h.logger.Warn("PUT /work-hours/{id} - Invalid input: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /work-hours/{id} - Failed to update rule: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("PUT /work-hours/{id} - Rule updated: rule_id=%d, doctor_id=%d", ruleID, req.DoctorID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
