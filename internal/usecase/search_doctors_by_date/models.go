package search_doctors_by_date

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
)

// Request asks which doctors attend on a date and how booked they are
type Request struct {
	Date time.Time
}

// Response lists per-doctor slot counts for the date, ordered by
// doctor id
type Response struct {
	Date    time.Time
	Doctors []domain.DoctorDayAvailability
}
