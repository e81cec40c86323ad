package employee

import (
	"context"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
)

type EmployeeService interface {
	// CreateEmployee returns the id of the new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) result.Response[string]
	GetAllEmployees(ctx context.Context) result.Response[[]EmployeeResponse]
	GetEmployeeByID(ctx context.Context, id string) result.Response[EmployeeResponse]
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) result.Response[EmployeeResponse]
	DeleteEmployee(ctx context.Context, id string) result.Response[string]
}
