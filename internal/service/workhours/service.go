package workhours

import (
	"context"
	"errors"
	"fmt"

	"github.com/medagenda/scheduling-service/internal/domain"
	workhoursRepo "github.com/medagenda/scheduling-service/internal/infra/storage/workhours"
	"github.com/medagenda/scheduling-service/internal/scheduling"
	"github.com/medagenda/scheduling-service/internal/service/workhours/models"
)

// Service manages a doctor's work-hour rules. Writes validate the rule
// strictly before it reaches storage.
type Service struct {
	workHoursRepo WorkHoursRepository
	logger        Logger
}

// NewService creates the work-hours service
func NewService(workHoursRepo WorkHoursRepository, logger Logger) *Service {
	return &Service{
		workHoursRepo: workHoursRepo,
		logger:        logger,
	}
}

// Create stores a new rule
func (s *Service) Create(ctx context.Context, req *models.SaveWorkHourRuleRequest) (*models.WorkHourRuleResponse, error) {
	s.logger.Info("Create: creating work-hour rule for doctor=%d", req.DoctorID)

	rule, err := s.buildRule(req)
	if err != nil {
		return nil, err
	}

	created, err := s.workHoursRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: rule id=%d created for doctor=%d", created.ID, created.DoctorID)
	return models.FromDomainRule(created), nil
}

// GetByDoctor lists a doctor's rules
func (s *Service) GetByDoctor(ctx context.Context, doctorID int64) (*models.WorkHourRuleListResponse, error) {
	s.logger.Info("GetByDoctor: fetching rules for doctor=%d", doctorID)

	if doctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	rules, err := s.workHoursRepo.GetByDoctor(ctx, doctorID)
	if err != nil {
		s.logger.Error("GetByDoctor: repository error for doctor=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: GetByDoctor - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRuleList(rules), nil
}

// Update replaces an existing rule
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveWorkHourRuleRequest) (*models.WorkHourRuleResponse, error) {
	s.logger.Info("Update: updating work-hour rule id=%d", id)

	rule, err := s.buildRule(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.workHoursRepo.Update(ctx, id, rule)
	if err != nil {
		if errors.Is(err, workhoursRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: rule id=%d not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: rule id=%d updated", id)
	return models.FromDomainRule(updated), nil
}

// Delete removes a rule
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting work-hour rule id=%d", id)

	if err := s.workHoursRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, workhoursRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: rule id=%d deleted", id)
	return nil
}

// buildRule parses the request and enforces the rule invariants
func (s *Service) buildRule(req *models.SaveWorkHourRuleRequest) (*domain.WorkHourRule, error) {
	if req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	if (req.Weekday == nil) == (req.SpecificDate == nil) {
		return nil, fmt.Errorf("%w: exactly one of weekday and specificDate must be set", ErrInvalidRule)
	}
	if req.Weekday != nil && (*req.Weekday < domain.MinWeekday || *req.Weekday > domain.MaxWeekday) {
		return nil, fmt.Errorf("%w: weekday must be between %d and %d",
			ErrInvalidRule, domain.MinWeekday, domain.MaxWeekday)
	}

	rule, err := req.ToDomainRule()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := scheduling.ValidateRule(rule); err != nil {
		s.logger.Warn("buildRule: invalid rule for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	return rule, nil
}
