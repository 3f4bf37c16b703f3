package get_doctor_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/medagenda/scheduling-service/internal/api/handlers"
	"github.com/medagenda/scheduling-service/internal/service/appointments"
)

const (
	msgInvalidDoctorID = "invalid doctor ID"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidStatus   = "unknown appointment status"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/appointments
// Query params: startDate, endDate (YYYY-MM-DD), status, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorIDStr := vars["doctorId"]

	doctorID, err := strconv.ParseInt(doctorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/appointments - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	serviceReq, err := ToServiceRequest(doctorID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/appointments - Invalid query params: doctor_id=%d, error=%v", doctorID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByDoctor(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /doctors/{id}/appointments - Invalid status filter: doctor_id=%d", doctorID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/appointments - Invalid input: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidDoctorID)

		default:
			h.logger.Error("GET /doctors/{id}/appointments - Failed to get appointments: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /doctors/{id}/appointments - Appointments retrieved: doctor_id=%d, count=%d",
		doctorID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
