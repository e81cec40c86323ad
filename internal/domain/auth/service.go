package auth

import (
	"context"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
)

type AuthService interface {
	// Register creates an employee account; it behaves like employee creation
	Register(ctx context.Context, req employee.CreateEmployeeRequest) result.Response[string]
	Login(ctx context.Context, req LoginRequest) result.Response[LoginResponse]
}
