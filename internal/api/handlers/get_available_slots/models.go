package get_available_slots

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
	getAvailableSlots "github.com/medagenda/scheduling-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DoctorID int64          `json:"doctorId"`
	Date     string         `json:"date"`
	Working  bool           `json:"working"`
	Slots    []SlotResponse `json:"slots"`
}

// SlotResponse is one grid position with its availability
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest builds the use case request from URL and query data
func ToUseCaseRequest(doctorID int64, dateStr string, excludeAppointmentID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		DoctorID:             doctorID,
		Date:                 date,
		ExcludeAppointmentID: excludeAppointmentID,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		DoctorID: resp.DoctorID,
		Date:     resp.Date.Format(domain.DateFormat),
		Working:  resp.Working,
		Slots:    slots,
	}
}
