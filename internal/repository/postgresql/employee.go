package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.name, e.email, e.password_hash, e.join_date, e.department_id, e.role_id,
		e.created_at, e.updated_at, d.name, r.name
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN roles r ON r.id = e.role_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.PasswordHash, &emp.JoinDate, &emp.DepartmentID, &emp.RoleID,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName, &emp.RoleName,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository. The insert and the joined
// read-back share one transaction.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	var created employee.Employee
	err := WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		q := GetQuerier(txCtx, e.db)

		query := `
			INSERT INTO employees (name, email, password_hash, join_date, department_id, role_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		var id string
		err := q.QueryRow(txCtx, query,
			newEmployee.Name, strings.ToLower(newEmployee.Email), newEmployee.PasswordHash,
			validator.FormatDate(newEmployee.JoinDate), newEmployee.DepartmentID, newEmployee.RoleID,
		).Scan(&id)
		if err != nil {
			if isUniqueViolation(err) {
				return employee.ErrEmailExists
			}
			return fmt.Errorf("failed to create employee: %w", err)
		}

		created, err = e.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.email = $1`, strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, employeeSelect+` ORDER BY e.name, e.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if !validator.IsValidUUID(emp.ID) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, department_id = $3, role_id = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, emp.Name, strings.ToLower(emp.Email), emp.DepartmentID, emp.RoleID, emp.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	return e.GetByID(ctx, emp.ID)
}

// Delete implements employee.EmployeeRepository. Attendance rows go with it.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ExistsByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	if !validator.IsValidUUID(id) {
		return false, nil
	}
	q := GetQuerier(ctx, e.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1 AND ($2::uuid IS NULL OR id <> $2::uuid))`

	var exclude *string
	if validator.IsValidUUID(excludeID) {
		exclude = &excludeID
	}

	var exists bool
	if err := q.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email)), exclude).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// ListIDsWithoutAttendanceOn implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListIDsWithoutAttendanceOn(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id
		FROM employees e
		WHERE e.join_date <= $1::date
			AND NOT EXISTS (
				SELECT 1 FROM attendances a
				WHERE a.employee_id = e.id AND a.attendance_date::date = $1::date
			)
		ORDER BY e.id
	`

	rows, err := q.Query(ctx, query, validator.FormatDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without attendance: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect employee ids: %w", err)
	}
	return ids, nil
}
