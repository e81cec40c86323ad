package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

const JobMarkAbsentEmployees = "mark_absent_employees"

// AbsenceLister finds employees without a record for a day.
type AbsenceLister interface {
	ListIDsWithoutAttendanceOn(ctx context.Context, date time.Time) ([]string, error)
}

var _ AbsenceLister = (employee.EmployeeRepository)(nil)

type AttendanceJobs struct {
	employees         AbsenceLister
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewAttendanceJobs(employees AbsenceLister, attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{
		employees:         employees,
		attendanceService: attendanceService,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(JobMarkAbsentEmployees, interval, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees records ABSENT for every employee with no attendance
// yesterday. Records go through the attendance service so the usual rules
// and events apply.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	day := validator.DateOnly(j.now()).AddDate(0, 0, -1)

	ids, err := j.employees.ListIDsWithoutAttendanceOn(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to list employees without attendance: %w", err)
	}
	if len(ids) == 0 {
		slog.Debug("Cron: no employees to mark absent", "date", validator.FormatDate(day))
		return nil
	}

	marked, failed := 0, 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		res := j.attendanceService.CreateAttendance(ctx, attendance.CreateAttendanceRequest{
			EmployeeID:     id,
			AttendanceDate: validator.FormatDate(day),
			Status:         string(attendance.StatusAbsent),
		})
		if !res.Success {
			failed++
			slog.Warn("Cron: failed to mark employee absent", "employee_id", id, "reason", res.Message)
			continue
		}
		marked++
	}

	slog.Info("Cron: marked absent employees", "date", validator.FormatDate(day), "marked", marked, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d employees could not be marked absent", failed, len(ids))
	}
	return nil
}
