package delete_work_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/medagenda/scheduling-service/internal/api/handlers"
	"github.com/medagenda/scheduling-service/internal/service/workhours"
)

const (
	msgInvalidRuleID = "invalid rule ID"
	msgNotFound      = "work-hour rule not found"
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

// Handle DELETE /api/v1/work-hours/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ruleIDStr := vars["ruleId"]

	ruleID, err := strconv.ParseInt(ruleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /work-hours/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	err = h.service.Delete(r.Context(), ruleID)
	if err != nil {
		switch {
		case errors.Is(err, workhours.ErrRuleNotFound):
			h.logger.Warn("DELETE /work-hours/{id} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /work-hours/{id} - Failed to delete rule: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /work-hours/{id} - Rule deleted: rule_id=%d", ruleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
