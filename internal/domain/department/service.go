package department

import (
	"context"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
)

type DepartmentService interface {
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) result.Response[DepartmentResponse]
	GetAllDepartments(ctx context.Context) result.Response[[]DepartmentResponse]
	GetDepartmentByID(ctx context.Context, id string) result.Response[DepartmentResponse]
	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) result.Response[DepartmentResponse]
	DeleteDepartment(ctx context.Context, id string) result.Response[string]
}
