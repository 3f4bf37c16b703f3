package workhours

import "errors"

var (
	// ErrRuleNotFound is returned when a work-hour rule does not exist
	ErrRuleNotFound = errors.New("workhours.repository: rule not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("workhours.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("workhours.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("workhours.repository: failed to scan row")
)
