package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All date comparisons ignore the time of day.
type AttendanceRepository interface {
	// Create inserts the record and returns it as stored.
	// Returns ErrAttendanceAlreadyMarked on a duplicate (employee, date).
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// QueryByDepartmentAndDate returns the department's records for date,
	// newest first, with employee and department names resolved.
	QueryByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) ([]Attendance, error)

	// QueryByEmployeeAndRange returns the employee's records inside the
	// optional inclusive bounds, newest first.
	QueryByEmployeeAndRange(ctx context.Context, employeeID string, fromDate, toDate *time.Time) ([]Attendance, error)

	AttendanceLookup
}
