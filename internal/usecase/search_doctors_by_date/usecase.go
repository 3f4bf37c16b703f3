package search_doctors_by_date

import (
	"context"
	"fmt"
	"sort"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/internal/scheduling"
)

// UseCase computes the "doctors available on date" view: for every
// doctor with a rule matching the date, the total, booked and
// available slot counts from the same engine the booking form uses.
type UseCase struct {
	workHoursRepo   WorkHoursRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(
	workHoursRepo WorkHoursRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		workHoursRepo:   workHoursRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute runs the search
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchDoctorsByDate: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	rules, err := uc.workHoursRepo.GetAllForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("SearchDoctorsByDate: failed to get work hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get work hours: %v", ErrInternal, err)
	}

	byDoctor := groupByDoctor(rules)

	doctorIDs := make([]int64, 0, len(byDoctor))
	for doctorID := range byDoctor {
		doctorIDs = append(doctorIDs, doctorID)
	}
	sort.Slice(doctorIDs, func(i, j int) bool { return doctorIDs[i] < doctorIDs[j] })

	doctors := make([]domain.DoctorDayAvailability, 0, len(doctorIDs))

	for _, doctorID := range doctorIDs {
		rule, working := scheduling.Resolve(byDoctor[doctorID], doctorID, req.Date)
		if !working {
			continue
		}

		times := scheduling.Generate(rule)
		if len(times) == 0 {
			// Malformed rule or empty interval; nothing to book, so the
			// doctor does not show up in the search at all
			uc.logger.Warn("SearchDoctorsByDate: rule id=%d for doctor=%d yields no slots",
				rule.ID, doctorID)
			continue
		}

		filter := domain.DoctorAppointmentsFilter{
			DoctorID:         doctorID,
			StartDate:        &req.Date,
			EndDate:          &req.Date,
			IncludeCancelled: false,
		}

		appointments, err := uc.appointmentRepo.GetByDoctorWithFilter(ctx, filter)
		if err != nil {
			uc.logger.Error("SearchDoctorsByDate: failed to get appointments for doctor=%d: %v", doctorID, err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		slots := scheduling.Annotate(times, scheduling.BookedTimes(appointments), nil)
		doctors = append(doctors, scheduling.Summarize(doctorID, slots))
	}

	uc.logger.Info("SearchDoctorsByDate: date=%s, doctors=%d",
		req.Date.Format(domain.DateFormat), len(doctors))

	return &Response{
		Date:    req.Date,
		Doctors: doctors,
	}, nil
}

// groupByDoctor splits the rule list per doctor, preserving the
// repository's resolution order within each group
func groupByDoctor(rules []*domain.WorkHourRule) map[int64][]*domain.WorkHourRule {
	byDoctor := make(map[int64][]*domain.WorkHourRule)
	for _, rule := range rules {
		byDoctor[rule.DoctorID] = append(byDoctor[rule.DoctorID], rule)
	}
	return byDoctor
}
