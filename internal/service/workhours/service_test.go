package workhours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/scheduling-service/internal/domain"
	workhoursRepo "github.com/medagenda/scheduling-service/internal/infra/storage/workhours"
	"github.com/medagenda/scheduling-service/internal/service/workhours/models"
	"github.com/medagenda/scheduling-service/pkg/ptr"
)

type stubRepo struct {
	created *domain.WorkHourRule
	err     error
}

func (s *stubRepo) Create(_ context.Context, rule *domain.WorkHourRule) (*domain.WorkHourRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *rule
	created.ID = 11
	s.created = &created
	return &created, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.WorkHourRule, error) {
	return nil, workhoursRepo.ErrRuleNotFound
}

func (s *stubRepo) GetByDoctor(_ context.Context, _ int64) ([]*domain.WorkHourRule, error) {
	return nil, s.err
}

func (s *stubRepo) Update(_ context.Context, _ int64, rule *domain.WorkHourRule) (*domain.WorkHourRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	updated := *rule
	updated.ID = 11
	return &updated, nil
}

func (s *stubRepo) Delete(_ context.Context, _ int64) error {
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func weeklyRequest() *models.SaveWorkHourRuleRequest {
	return &models.SaveWorkHourRuleRequest{
		DoctorID:    42,
		Weekday:     ptr.Ptr(1),
		StartTime:   "08:00",
		EndTime:     "12:00",
		SlotMinutes: 30,
	}
}

func TestCreate_ValidWeeklyRule(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), weeklyRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "08:00", resp.StartTime)
	require.NotNil(t, repo.created)
	assert.Equal(t, 1, *repo.created.Weekday)
}

func TestCreate_NormalizesTimeWithSeconds(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	req := weeklyRequest()
	req.StartTime = "08:00:00"

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.StartTime)
}

func TestCreate_RejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.SaveWorkHourRuleRequest)
		wantErr error
	}{
		{
			name:    "weekday and specific date both set",
			mutate:  func(r *models.SaveWorkHourRuleRequest) { r.SpecificDate = ptr.Ptr("2026-09-07") },
			wantErr: ErrInvalidRule,
		},
		{
			name: "neither weekday nor specific date",
			mutate: func(r *models.SaveWorkHourRuleRequest) {
				r.Weekday = nil
			},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "weekday out of range",
			mutate:  func(r *models.SaveWorkHourRuleRequest) { r.Weekday = ptr.Ptr(7) },
			wantErr: ErrInvalidRule,
		},
		{
			name: "inverted interval",
			mutate: func(r *models.SaveWorkHourRuleRequest) {
				r.StartTime = "12:00"
				r.EndTime = "08:00"
			},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "non-positive slot size",
			mutate:  func(r *models.SaveWorkHourRuleRequest) { r.SlotMinutes = 0 },
			wantErr: ErrInvalidRule,
		},
		{
			name:    "lunch start without lunch end",
			mutate:  func(r *models.SaveWorkHourRuleRequest) { r.LunchStart = ptr.Ptr("12:00") },
			wantErr: ErrInvalidRule,
		},
		{
			name: "lunch outside working hours",
			mutate: func(r *models.SaveWorkHourRuleRequest) {
				r.LunchStart = ptr.Ptr("13:00")
				r.LunchEnd = ptr.Ptr("14:00")
			},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "unparseable time",
			mutate:  func(r *models.SaveWorkHourRuleRequest) { r.StartTime = "late morning" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unparseable specific date",
			mutate:  func(r *models.SaveWorkHourRuleRequest) { r.Weekday = nil; r.SpecificDate = ptr.Ptr("09/07/2026") },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive doctor id",
			mutate:  func(r *models.SaveWorkHourRuleRequest) { r.DoctorID = 0 },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubRepo{}, nopLogger{})

			req := weeklyRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_SpecificDateRule(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	req := weeklyRequest()
	req.Weekday = nil
	req.SpecificDate = ptr.Ptr("2026-09-07")

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.SpecificDate)
	assert.Equal(t, "2026-09-07", *resp.SpecificDate)
	require.NotNil(t, repo.created.SpecificDate)
	assert.Equal(t, time.September, repo.created.SpecificDate.Month())
}

func TestUpdate_RuleNotFound(t *testing.T) {
	svc := NewService(&stubRepo{err: workhoursRepo.ErrRuleNotFound}, nopLogger{})

	_, err := svc.Update(context.Background(), 999, weeklyRequest())
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestDelete_RuleNotFound(t *testing.T) {
	svc := NewService(&stubRepo{err: workhoursRepo.ErrRuleNotFound}, nopLogger{})

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}
