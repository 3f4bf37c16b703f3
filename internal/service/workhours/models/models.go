package models

import (
	"fmt"
	"time"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/pkg/types"
)

// SaveWorkHourRuleRequest creates or replaces a rule. Exactly one of
// Weekday and SpecificDate must be set.
type SaveWorkHourRuleRequest struct {
	DoctorID     int64
	Weekday      *int
	SpecificDate *string // YYYY-MM-DD
	StartTime    string  // HH:MM or HH:MM:SS
	EndTime      string
	SlotMinutes  int
	LunchStart   *string
	LunchEnd     *string
}

// ToDomainRule parses and converts the request
func (r *SaveWorkHourRuleRequest) ToDomainRule() (*domain.WorkHourRule, error) {
	rule := &domain.WorkHourRule{
		DoctorID:    r.DoctorID,
		Weekday:     r.Weekday,
		SlotMinutes: r.SlotMinutes,
	}

	if r.SpecificDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.SpecificDate)
		if err != nil {
			return nil, fmt.Errorf("invalid specific date %q: expected YYYY-MM-DD", *r.SpecificDate)
		}
		rule.SpecificDate = &date
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %v", err)
	}
	rule.StartTime = startTime

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %v", err)
	}
	rule.EndTime = endTime

	if r.LunchStart != nil {
		ts, err := types.NewTimeStringFromString(*r.LunchStart)
		if err != nil {
			return nil, fmt.Errorf("invalid lunch start: %v", err)
		}
		rule.LunchStart = &ts
	}
	if r.LunchEnd != nil {
		ts, err := types.NewTimeStringFromString(*r.LunchEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid lunch end: %v", err)
		}
		rule.LunchEnd = &ts
	}

	return rule, nil
}

// WorkHourRuleResponse is the service-level rule view
type WorkHourRuleResponse struct {
	ID           int64
	DoctorID     int64
	Weekday      *int
	SpecificDate *string
	StartTime    string
	EndTime      string
	SlotMinutes  int
	LunchStart   *string
	LunchEnd     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkHourRuleListResponse wraps a listing
type WorkHourRuleListResponse struct {
	Rules []WorkHourRuleResponse
	Total int
}

// FromDomainRule converts a domain rule
func FromDomainRule(rule *domain.WorkHourRule) *WorkHourRuleResponse {
	resp := &WorkHourRuleResponse{
		ID:          rule.ID,
		DoctorID:    rule.DoctorID,
		Weekday:     rule.Weekday,
		StartTime:   rule.StartTime.String(),
		EndTime:     rule.EndTime.String(),
		SlotMinutes: rule.SlotMinutes,
		CreatedAt:   rule.CreatedAt,
		UpdatedAt:   rule.UpdatedAt,
	}

	if rule.SpecificDate != nil {
		date := rule.SpecificDate.Format(domain.DateFormat)
		resp.SpecificDate = &date
	}
	if rule.LunchStart != nil {
		s := rule.LunchStart.String()
		resp.LunchStart = &s
	}
	if rule.LunchEnd != nil {
		s := rule.LunchEnd.String()
		resp.LunchEnd = &s
	}

	return resp
}

// FromDomainRuleList converts a domain rule slice
func FromDomainRuleList(rules []*domain.WorkHourRule) *WorkHourRuleListResponse {
	result := make([]WorkHourRuleResponse, len(rules))
	for i, rule := range rules {
		result[i] = *FromDomainRule(rule)
	}
	return &WorkHourRuleListResponse{
		Rules: result,
		Total: len(result),
	}
}
