package get_doctor_work_hours

import (
	"time"

	"github.com/medagenda/scheduling-service/internal/service/workhours/models"
)

// WorkHourRuleListResponse HTTP response model
type WorkHourRuleListResponse struct {
	Rules []WorkHourRuleResponse `json:"rules"`
	Total int                    `json:"total"`
}

// WorkHourRuleResponse is one rule in the listing
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

// FromServiceResponse converts the service response to the HTTP model
func FromServiceResponse(resp *models.WorkHourRuleListResponse) *WorkHourRuleListResponse {
	rules := make([]WorkHourRuleResponse, len(resp.Rules))
	for i, rule := range resp.Rules {
		rules[i] = WorkHourRuleResponse{
			ID:           rule.ID,
			DoctorID:     rule.DoctorID,
			Weekday:      rule.Weekday,
			SpecificDate: rule.SpecificDate,
			StartTime:    rule.StartTime,
			EndTime:      rule.EndTime,
			SlotMinutes:  rule.SlotMinutes,
			LunchStart:   rule.LunchStart,
			LunchEnd:     rule.LunchEnd,
			CreatedAt:    rule.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    rule.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &WorkHourRuleListResponse{
		Rules: rules,
		Total: resp.Total,
	}
}
