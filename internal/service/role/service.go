package role

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/role"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
)

type RoleServiceImpl struct {
	roleRepo role.RoleRepository
}

func NewRoleService(roleRepo role.RoleRepository) role.RoleService {
	return &RoleServiceImpl{roleRepo: roleRepo}
}

func errorOccurred[T any](op string, err error) result.Response[T] {
	slog.Error("role operation failed", "operation", op, "error", err)
	return result.Failure[T](fmt.Sprintf("An error occurred: %s", err.Error()))
}

// CreateRole implements role.RoleService.
func (s *RoleServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) result.Response[role.RoleResponse] {
	msgs := req.Validate().Messages()
	if len(msgs) == 0 {
		taken, err := s.roleRepo.ExistsByName(ctx, req.Name, "")
		if err != nil {
			return errorOccurred[role.RoleResponse]("create", err)
		}
		if taken {
			msgs = append(msgs, role.MsgDuplicate)
		}
	}
	if len(msgs) > 0 {
		return result.Invalid[role.RoleResponse](msgs)
	}

	created, err := s.roleRepo.Create(ctx, role.Role{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		if errors.Is(err, role.ErrRoleNameExists) {
			return result.Failure[role.RoleResponse](role.MsgDuplicate)
		}
		return errorOccurred[role.RoleResponse]("create", err)
	}

	return result.Success("Role created successfully.", role.NewRoleResponse(created))
}

// GetAllRoles implements role.RoleService.
func (s *RoleServiceImpl) GetAllRoles(ctx context.Context) result.Response[[]role.RoleResponse] {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return errorOccurred[[]role.RoleResponse]("list", err)
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.NewRoleResponse(r))
	}
	return result.Success("Roles retrieved successfully.", responses)
}

// GetRoleByID implements role.RoleService.
func (s *RoleServiceImpl) GetRoleByID(ctx context.Context, id string) result.Response[role.RoleResponse] {
	r, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return result.Failure[role.RoleResponse](role.MsgNotFound)
		}
		return errorOccurred[role.RoleResponse]("get", err)
	}
	return result.Success("Role retrieved successfully.", role.NewRoleResponse(r))
}

// UpdateRole implements role.RoleService.
func (s *RoleServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) result.Response[role.RoleResponse] {
	exists, err := s.roleRepo.ExistsByID(ctx, req.ID)
	if err != nil {
		return errorOccurred[role.RoleResponse]("update", err)
	}
	if !exists {
		return result.Failure[role.RoleResponse](role.MsgNotFound)
	}

	msgs := req.Validate().Messages()
	if len(msgs) == 0 {
		taken, err := s.roleRepo.ExistsByName(ctx, req.Name, req.ID)
		if err != nil {
			return errorOccurred[role.RoleResponse]("update", err)
		}
		if taken {
			msgs = append(msgs, role.MsgDuplicate)
		}
	}
	if len(msgs) > 0 {
		return result.Invalid[role.RoleResponse](msgs)
	}

	updated, err := s.roleRepo.Update(ctx, role.Role{ID: req.ID, Name: strings.TrimSpace(req.Name)})
	if err != nil {
		switch {
		case errors.Is(err, role.ErrRoleNotFound):
			return result.Failure[role.RoleResponse](role.MsgNotFound)
		case errors.Is(err, role.ErrRoleNameExists):
			return result.Failure[role.RoleResponse](role.MsgDuplicate)
		}
		return errorOccurred[role.RoleResponse]("update", err)
	}

	return result.Success("Role updated successfully.", role.NewRoleResponse(updated))
}

// DeleteRole implements role.RoleService.
func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) result.Response[string] {
	if err := s.roleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return result.Failure[string](role.MsgNotFound)
		}
		return errorOccurred[string]("delete", err)
	}
	return result.Success("Role deleted successfully.", id)
}
