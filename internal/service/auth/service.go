package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	employeeService employee.EmployeeService
	jwtService      jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, employeeService employee.EmployeeService, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo:    employeeRepo,
		employeeService: employeeService,
		jwtService:      jwtService,
	}
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req employee.CreateEmployeeRequest) result.Response[string] {
	return s.employeeService.CreateEmployee(ctx, req)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) result.Response[auth.LoginResponse] {
	if err := req.Validate(); err != nil {
		return result.Failure[auth.LoginResponse](auth.MsgInvalidCredentials)
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Warn("login failed", "email", req.Email, "reason", "unknown email")
			return result.Failure[auth.LoginResponse](auth.MsgInvalidCredentials)
		}
		slog.Error("failed to load employee for login", "error", err)
		return result.Failure[auth.LoginResponse](fmt.Sprintf("An error occurred: %s", err.Error()))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("login failed", "employee_id", emp.ID, "reason", "password mismatch")
		return result.Failure[auth.LoginResponse](auth.MsgInvalidCredentials)
	}

	roleName := ""
	if emp.RoleName != nil {
		roleName = *emp.RoleName
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(jwt.Claims{
		EmployeeID: emp.ID,
		Email:      emp.Email,
		Name:       emp.Name,
		Role:       roleName,
	})
	if err != nil {
		slog.Error("failed to generate access token", "employee_id", emp.ID, "error", err)
		return result.Failure[auth.LoginResponse](fmt.Sprintf("An error occurred: %s", err.Error()))
	}

	slog.Info("employee logged in", "employee_id", emp.ID, "role", roleName)
	return result.Success(auth.MsgLoggedIn, auth.LoginResponse{
		Token:      token,
		ExpiresAt:  expiresAt,
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Role:       roleName,
	})
}
