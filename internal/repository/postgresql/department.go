package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query, strings.TrimSpace(d.Name)).Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	if !validator.IsValidUUID(id) {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM departments WHERE id = $1`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by id: %w", err)
	}
	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := []department.Department{}
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	if !validator.IsValidUUID(d.ID) {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`

	var updated department.Department
	err := q.QueryRow(ctx, query, strings.TrimSpace(d.Name), d.ID).Scan(&updated.ID, &updated.Name, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}
	return updated, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return department.ErrDepartmentNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return department.ErrDepartmentInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// ExistsByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	if !validator.IsValidUUID(id) {
		return false, nil
	}
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check department existence: %w", err)
	}
	return exists, nil
}

// ExistsByName implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM departments WHERE name = $1 AND ($2::uuid IS NULL OR id <> $2::uuid))`

	var exclude *string
	if validator.IsValidUUID(excludeID) {
		exclude = &excludeID
	}

	var exists bool
	if err := q.QueryRow(ctx, query, strings.TrimSpace(name), exclude).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check department name: %w", err)
	}
	return exists, nil
}
