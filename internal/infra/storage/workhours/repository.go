package workhours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/medagenda/scheduling-service/internal/domain"
	"github.com/medagenda/scheduling-service/pkg/dbmetrics"
	"github.com/medagenda/scheduling-service/pkg/psqlbuilder"
	"github.com/medagenda/scheduling-service/pkg/types"
)

var ruleColumns = []string{
	"id",
	"doctor_id",
	"weekday",
	"specific_date",
	"start_time",
	"end_time",
	"slot_minutes",
	"lunch_start",
	"lunch_end",
	"created_at",
	"updated_at",
}

// Repository persists doctor work-hour rules
type Repository struct {
	db DBExecutor
}

// NewRepository creates a work-hours repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new work-hour rule
func (r *Repository) Create(ctx context.Context, rule *domain.WorkHourRule) (*domain.WorkHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("doctor_work_hours").
		Columns(
			"doctor_id",
			"weekday",
			"specific_date",
			"start_time",
			"end_time",
			"slot_minutes",
			"lunch_start",
			"lunch_end",
		).
		Values(
			rule.DoctorID,
			rule.Weekday,
			rule.SpecificDate,
			rule.StartTime,
			rule.EndTime,
			rule.SlotMinutes,
			rule.LunchStart,
			rule.LunchEnd,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID fetches a single rule
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WorkHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("doctor_work_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// GetByDoctor fetches all rules of a doctor in resolution order:
// specific-date rules first, then recurring ones, id ASC within each
// tier. The resolver picks the first match, so this order is what makes
// duplicate-rule tie-breaks stable across calls.
func (r *Repository) GetByDoctor(ctx context.Context, doctorID int64) ([]*domain.WorkHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("doctor_work_hours").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		OrderBy("specific_date ASC NULLS LAST", "weekday ASC NULLS LAST", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// GetAllForDate fetches every doctor's rules that could apply to the
// given date: specific-date overrides for that date plus recurring
// rules for its weekday. Used by the doctors-by-date search.
func (r *Repository) GetAllForDate(ctx context.Context, date time.Time) ([]*domain.WorkHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weekday := int(date.Weekday())

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("doctor_work_hours").
		Where(squirrel.Or{
			squirrel.Eq{"specific_date": date},
			squirrel.And{
				squirrel.Eq{"weekday": weekday},
				squirrel.Eq{"specific_date": nil},
			},
		}).
		OrderBy("doctor_id ASC", "specific_date ASC NULLS LAST", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// Update replaces the schedule fields of an existing rule
func (r *Repository) Update(ctx context.Context, id int64, rule *domain.WorkHourRule) (*domain.WorkHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("doctor_work_hours").
		Set("weekday", rule.Weekday).
		Set("specific_date", rule.SpecificDate).
		Set("start_time", rule.StartTime).
		Set("end_time", rule.EndTime).
		Set("slot_minutes", rule.SlotMinutes).
		Set("lunch_start", rule.LunchStart).
		Set("lunch_end", rule.LunchEnd).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING doctor_id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.DoctorID, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rule.ID = id
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// Delete removes a rule
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("doctor_work_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRule reads one rule row. Nullable time columns go through
// NullString so stored HH:MM:SS values are normalized to HH:MM.
func scanRule(row rowScanner) (*domain.WorkHourRule, error) {
	var rule domain.WorkHourRule
	var weekday sql.NullInt64
	var specificDate sql.NullTime
	var lunchStart, lunchEnd sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.DoctorID,
		&weekday,
		&specificDate,
		&rule.StartTime,
		&rule.EndTime,
		&rule.SlotMinutes,
		&lunchStart,
		&lunchEnd,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if weekday.Valid {
		w := int(weekday.Int64)
		rule.Weekday = &w
	}
	if specificDate.Valid {
		d := specificDate.Time
		rule.SpecificDate = &d
	}
	if lunchStart.Valid {
		ts, err := types.NewTimeStringFromString(lunchStart.String)
		if err != nil {
			return nil, err
		}
		rule.LunchStart = &ts
	}
	if lunchEnd.Valid {
		ts, err := types.NewTimeStringFromString(lunchEnd.String)
		if err != nil {
			return nil, err
		}
		rule.LunchEnd = &ts
	}
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

func scanRules(rows *sql.Rows) ([]*domain.WorkHourRule, error) {
	rules := make([]*domain.WorkHourRule, 0)

	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
