package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
)

// AttendanceService records attendance and reports on it.
//
// Response-returning operations never fail: unexpected errors become failure
// responses. CSV operations return unexpected errors to the caller and signal
// "nothing to export" with an empty byte slice.
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) result.Response[AttendanceResponse]

	// GetSummaryByDepartment lists a department's records for one day.
	// An empty list is a success.
	GetSummaryByDepartment(ctx context.Context, q SummaryQuery) result.Response[[]AttendanceResponse]

	// GetEmployeeHistory lists an employee's records. The date range is not
	// validated; an inverted range yields an empty list.
	GetEmployeeHistory(ctx context.Context, q HistoryQuery) result.Response[[]AttendanceResponse]

	GenerateSummaryCSV(ctx context.Context, q SummaryQuery) ([]byte, error)
	GenerateEmployeeHistoryCSV(ctx context.Context, q HistoryQuery) ([]byte, error)
}
