package role

import (
	"context"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
)

type RoleService interface {
	CreateRole(ctx context.Context, req CreateRoleRequest) result.Response[RoleResponse]
	GetAllRoles(ctx context.Context) result.Response[[]RoleResponse]
	GetRoleByID(ctx context.Context, id string) result.Response[RoleResponse]
	UpdateRole(ctx context.Context, req UpdateRoleRequest) result.Response[RoleResponse]
	DeleteRole(ctx context.Context, id string) result.Response[string]
}
