package update_work_hours

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/service/workhours/models"
)

// WorkHourRuleRequest HTTP request model. Exactly one of weekday and
// specificDate must be set.
type WorkHourRuleRequest struct {
	DoctorID     int64   `json:"doctorId"`
	Weekday      *int    `json:"weekday,omitempty"` // 0 = Sunday
	SpecificDate *string `json:"specificDate,omitempty"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	SlotMinutes  int     `json:"slotMinutes"`
	LunchStart   *string `json:"lunchStart,omitempty"`
	LunchEnd     *string `json:"lunchEnd,omitempty"`
}

// WorkHourRuleResponse HTTP response model
type WorkHourRuleResponse struct {
	ID           int64   `json:"id"`
	DoctorID     int64   `json:"doctorId"`
	Weekday      *int    `json:"weekday,omitempty"`
	SpecificDate *string `json:"specificDate,omitempty"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	SlotMinutes  int     `json:"slotMinutes"`
	LunchStart   *string `json:"lunchStart,omitempty"`
	LunchEnd     *string `json:"lunchEnd,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *WorkHourRuleRequest) ToServiceRequest() *models.SaveWorkHourRuleRequest {
	return &models.SaveWorkHourRuleRequest{
		DoctorID:     r.DoctorID,
		Weekday:      r.Weekday,
		SpecificDate: r.SpecificDate,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		SlotMinutes:  r.SlotMinutes,
		LunchStart:   r.LunchStart,
		LunchEnd:     r.LunchEnd,
	}
}

// FromServiceResponse converts the service response to the HTTP model
func FromServiceResponse(resp *models.WorkHourRuleResponse) *WorkHourRuleResponse {
	return &WorkHourRuleResponse{
		ID:           resp.ID,
		DoctorID:     resp.DoctorID,
		Weekday:      resp.Weekday,
		SpecificDate: resp.SpecificDate,
		StartTime:    resp.StartTime,
		EndTime:      resp.EndTime,
		SlotMinutes:  resp.SlotMinutes,
		LunchStart:   resp.LunchStart,
		LunchEnd:     resp.LunchEnd,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
