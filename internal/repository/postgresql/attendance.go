package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.attendance_date, a.status, a.created_at, a.updated_at,
		e.name, d.id, d.name, r.name
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN roles r ON r.id = e.role_id
`

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, attendance_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, COALESCE($5::timestamptz, NOW()), COALESCE($6::timestamptz, NOW()))
		RETURNING id, employee_id, attendance_date, status, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.AttendanceDate, a.Status, optionalTimestamp(a.CreatedAt), optionalTimestamp(a.UpdatedAt),
	).Scan(
		&created.ID, &created.EmployeeID, &created.AttendanceDate, &created.Status,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// ExistsForEmployeeOnDate implements attendance.AttendanceLookup.
func (r *attendanceRepositoryImpl) ExistsForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	if !validator.IsValidUUID(employeeID) {
		return false, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendances
			WHERE employee_id = $1 AND attendance_date::date = $2::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, validator.FormatDate(date)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}
	return exists, nil
}

// QueryByDepartmentAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) QueryByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) ([]attendance.Attendance, error) {
	if !validator.IsValidUUID(departmentID) {
		return []attendance.Attendance{}, nil
	}
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE e.department_id = $1 AND a.attendance_date::date = $2::date
		ORDER BY a.attendance_date DESC, a.created_at DESC, a.id
	`

	rows, err := q.Query(ctx, query, departmentID, validator.FormatDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query department attendance: %w", err)
	}
	return scanAttendances(rows)
}

// QueryByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) QueryByEmployeeAndRange(ctx context.Context, employeeID string, fromDate, toDate *time.Time) ([]attendance.Attendance, error) {
	if !validator.IsValidUUID(employeeID) {
		return []attendance.Attendance{}, nil
	}
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE a.employee_id = $1
			AND ($2::date IS NULL OR a.attendance_date::date >= $2::date)
			AND ($3::date IS NULL OR a.attendance_date::date <= $3::date)
		ORDER BY a.attendance_date DESC, a.created_at DESC, a.id
	`

	rows, err := q.Query(ctx, query, employeeID, optionalDate(fromDate), optionalDate(toDate))
	if err != nil {
		return nil, fmt.Errorf("failed to query employee attendance: %w", err)
	}
	return scanAttendances(rows)
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.AttendanceDate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.DepartmentID, &a.DepartmentName, &a.RoleName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}
	return records, nil
}

// optionalTimestamp lets the column default apply to an unset time.
func optionalTimestamp(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// optionalDate turns a missing bound into SQL NULL.
func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := validator.FormatDate(*t)
	return &s
}
