package attendance

import (
	"context"
	"time"
)

// EmployeeLookup resolves employee references for validation.
type EmployeeLookup interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// DepartmentLookup resolves department references for validation.
type DepartmentLookup interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// AttendanceLookup answers the one-record-per-day question.
type AttendanceLookup interface {
	ExistsForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
}

// Validator returns the violated rules as human readable messages. An empty
// slice means the input is valid; the error is reserved for lookup failures.
type Validator interface {
	ValidateCreate(ctx context.Context, req CreateAttendanceRequest) ([]string, error)
	ValidateSummaryQuery(ctx context.Context, departmentID string, date time.Time) ([]string, error)
	ValidateHistoryQuery(ctx context.Context, employeeID string) ([]string, error)
}
