package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type attendanceValidator struct {
	employees   attendance.EmployeeLookup
	departments attendance.DepartmentLookup
	records     attendance.AttendanceLookup
}

func NewValidator(
	employees attendance.EmployeeLookup,
	departments attendance.DepartmentLookup,
	records attendance.AttendanceLookup,
) attendance.Validator {
	return &attendanceValidator{
		employees:   employees,
		departments: departments,
		records:     records,
	}
}

// ValidateCreate implements attendance.Validator. Every rule is evaluated;
// the employee and same-day lookups run concurrently.
func (v *attendanceValidator) ValidateCreate(ctx context.Context, req attendance.CreateAttendanceRequest) ([]string, error) {
	hasEmployee := !validator.IsEmpty(req.EmployeeID) && !validator.IsNilUUID(req.EmployeeID)
	date, dateOK := validator.ParseDateTime(req.AttendanceDate)
	// 0001-01-01 is the zero time and counts as missing
	hasDate := !validator.IsEmpty(req.AttendanceDate) && !(dateOK && date.IsZero())

	var employeeExists, alreadyMarked bool
	g, gctx := errgroup.WithContext(ctx)
	if hasEmployee {
		g.Go(func() error {
			exists, err := v.employees.ExistsByID(gctx, req.EmployeeID)
			if err != nil {
				return fmt.Errorf("failed to look up employee: %w", err)
			}
			employeeExists = exists
			return nil
		})
	}
	if hasEmployee && hasDate && dateOK {
		g.Go(func() error {
			exists, err := v.records.ExistsForEmployeeOnDate(gctx, req.EmployeeID, date)
			if err != nil {
				return fmt.Errorf("failed to look up existing attendance: %w", err)
			}
			alreadyMarked = exists
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	errs := []string{}
	switch {
	case !hasEmployee:
		errs = append(errs, attendance.MsgEmployeeIDRequired)
	case !employeeExists:
		errs = append(errs, attendance.MsgEmployeeNotFound)
	}

	switch {
	case !hasDate:
		errs = append(errs, attendance.MsgDateRequired)
	case !dateOK:
		errs = append(errs, attendance.MsgInvalidDate)
	}

	if _, ok := attendance.ParseStatus(req.Status); !ok {
		errs = append(errs, attendance.MsgInvalidStatus)
	}

	if alreadyMarked {
		errs = append(errs, attendance.AlreadyMarkedMessage(validator.FormatDate(date)))
	}

	return errs, nil
}

// ValidateSummaryQuery implements attendance.Validator. A zero date counts as missing.
func (v *attendanceValidator) ValidateSummaryQuery(ctx context.Context, departmentID string, date time.Time) ([]string, error) {
	errs := []string{}

	if validator.IsEmpty(departmentID) {
		errs = append(errs, attendance.MsgDepartmentIDRequired)
	} else {
		exists, err := v.departments.ExistsByID(ctx, departmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up department: %w", err)
		}
		if !exists {
			errs = append(errs, attendance.MsgDepartmentNotFound)
		}
	}

	if date.IsZero() {
		errs = append(errs, attendance.MsgSummaryDateRequired)
	}

	return errs, nil
}

// ValidateHistoryQuery implements attendance.Validator.
func (v *attendanceValidator) ValidateHistoryQuery(ctx context.Context, employeeID string) ([]string, error) {
	if validator.IsEmpty(employeeID) {
		return []string{attendance.MsgEmployeeNotFound}, nil
	}

	exists, err := v.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if !exists {
		return []string{attendance.MsgEmployeeNotFound}, nil
	}
	return []string{}, nil
}
