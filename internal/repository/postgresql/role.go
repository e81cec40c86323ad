package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/role"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, rl role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`

	var created role.Role
	err := q.QueryRow(ctx, query, strings.TrimSpace(rl.Name)).Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return role.Role{}, role.ErrRoleNameExists
		}
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}
	return created, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	if !validator.IsValidUUID(id) {
		return role.Role{}, role.ErrRoleNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM roles WHERE id = $1`

	var rl role.Role
	err := q.QueryRow(ctx, query, id).Scan(&rl.ID, &rl.Name, &rl.CreatedAt, &rl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, fmt.Errorf("failed to get role by id: %w", err)
	}
	return rl, nil
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	roles := []role.Role{}
	for rows.Next() {
		var rl role.Role
		if err := rows.Scan(&rl.ID, &rl.Name, &rl.CreatedAt, &rl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, rl)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, rl role.Role) (role.Role, error) {
	if !validator.IsValidUUID(rl.ID) {
		return role.Role{}, role.ErrRoleNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`

	var updated role.Role
	err := q.QueryRow(ctx, query, strings.TrimSpace(rl.Name), rl.ID).Scan(&updated.ID, &updated.Name, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		if isUniqueViolation(err) {
			return role.Role{}, role.ErrRoleNameExists
		}
		return role.Role{}, fmt.Errorf("failed to update role: %w", err)
	}
	return updated, nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return role.ErrRoleNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return role.ErrRoleInUse
		}
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

// ExistsByID implements role.RoleRepository.
func (r *roleRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	if !validator.IsValidUUID(id) {
		return false, nil
	}
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check role existence: %w", err)
	}
	return exists, nil
}

// ExistsByName implements role.RoleRepository.
func (r *roleRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1 AND ($2::uuid IS NULL OR id <> $2::uuid))`

	var exclude *string
	if validator.IsValidUUID(excludeID) {
		exclude = &excludeID
	}

	var exists bool
	if err := q.QueryRow(ctx, query, strings.TrimSpace(name), exclude).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check role name: %w", err)
	}
	return exists, nil
}
