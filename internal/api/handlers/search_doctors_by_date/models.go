package search_doctors_by_date

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
	searchDoctorsByDate "github.com/medagenda/scheduling-service/internal/usecase/search_doctors_by_date"
)

// DoctorsByDateResponse HTTP response model
type DoctorsByDateResponse struct {
	Date    string                  `json:"date"`
	Doctors []DoctorDayAvailability `json:"doctors"`
}

// DoctorDayAvailability summarizes one doctor's load on the date
type DoctorDayAvailability struct {
	DoctorID       int64 `json:"doctorId"`
	TotalSlots     int   `json:"totalSlots"`
	BookedSlots    int   `json:"bookedSlots"`
	AvailableSlots int   `json:"availableSlots"`
	FullyBooked    bool  `json:"fullyBooked"`
}

// ToUseCaseRequest builds the use case request from query data
func ToUseCaseRequest(dateStr string) (*searchDoctorsByDate.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &searchDoctorsByDate.Request{Date: date}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *searchDoctorsByDate.Response) *DoctorsByDateResponse {
	doctors := make([]DoctorDayAvailability, len(resp.Doctors))
	for i, d := range resp.Doctors {
		doctors[i] = DoctorDayAvailability{
			DoctorID:       d.DoctorID,
			TotalSlots:     d.TotalSlots,
			BookedSlots:    d.BookedSlots,
			AvailableSlots: d.AvailableSlots,
			FullyBooked:    d.IsFullyBooked(),
		}
	}

	return &DoctorsByDateResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Doctors: doctors,
	}
}
