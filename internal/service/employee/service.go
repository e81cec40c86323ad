package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/role"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	roleRepo       role.RoleRepository
	now            func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	roleRepo role.RoleRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		roleRepo:       roleRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func errorOccurred[T any](op string, err error) result.Response[T] {
	slog.Error("employee operation failed", "operation", op, "error", err)
	return result.Failure[T](fmt.Sprintf("An error occurred: %s", err.Error()))
}

// checkReferences appends the lookup-based rules shared by create and update.
func (s *EmployeeServiceImpl) checkReferences(ctx context.Context, msgs []string, email, departmentID, roleID, excludeID string) ([]string, error) {
	deptExists, err := s.departmentRepo.ExistsByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if !deptExists {
		msgs = append(msgs, employee.MsgDepartmentNotFound)
	}

	roleExists, err := s.roleRepo.ExistsByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if !roleExists {
		msgs = append(msgs, employee.MsgRoleNotFound)
	}

	if !validator.IsEmpty(email) {
		taken, err := s.employeeRepo.ExistsByEmail(ctx, email, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			msgs = append(msgs, employee.MsgDuplicateEmail)
		}
	}

	return msgs, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) result.Response[string] {
	msgs := req.Validate().Messages()
	msgs, err := s.checkReferences(ctx, msgs, req.Email, req.DepartmentID, req.RoleID, "")
	if err != nil {
		return errorOccurred[string]("create", err)
	}
	if len(msgs) > 0 {
		slog.Warn("employee rejected", "email", req.Email, "errors", strings.Join(msgs, ", "))
		return result.Invalid[string](msgs)
	}

	joinDate := validator.DateOnly(s.now())
	if !validator.IsEmpty(req.JoinDate) {
		parsed, _ := validator.ParseDateTime(req.JoinDate)
		joinDate = validator.DateOnly(parsed)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errorOccurred[string]("create", fmt.Errorf("failed to hash password: %w", err))
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
		JoinDate:     joinDate,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return result.Failure[string](employee.MsgDuplicateEmail)
		}
		return errorOccurred[string]("create", err)
	}

	slog.Info("employee created", "employee_id", created.ID)
	return result.Success("Employee created successfully.", created.ID)
}

// GetAllEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetAllEmployees(ctx context.Context) result.Response[[]employee.EmployeeResponse] {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return errorOccurred[[]employee.EmployeeResponse]("list", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return result.Success("Employees retrieved successfully.", responses)
}

// GetEmployeeByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeByID(ctx context.Context, id string) result.Response[employee.EmployeeResponse] {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return result.Failure[employee.EmployeeResponse](employee.MsgNotFound)
		}
		return errorOccurred[employee.EmployeeResponse]("get", err)
	}
	return result.Success("Employee retrieved successfully.", employee.NewEmployeeResponse(e))
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) result.Response[employee.EmployeeResponse] {
	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return result.Failure[employee.EmployeeResponse](employee.MsgNotFound)
		}
		return errorOccurred[employee.EmployeeResponse]("update", err)
	}

	msgs := req.Validate().Messages()
	msgs, err = s.checkReferences(ctx, msgs, req.Email, req.DepartmentID, req.RoleID, existing.ID)
	if err != nil {
		return errorOccurred[employee.EmployeeResponse]("update", err)
	}
	if len(msgs) > 0 {
		return result.Invalid[employee.EmployeeResponse](msgs)
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Email = strings.TrimSpace(req.Email)
	existing.DepartmentID = req.DepartmentID
	existing.RoleID = req.RoleID

	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrEmployeeNotFound):
			return result.Failure[employee.EmployeeResponse](employee.MsgNotFound)
		case errors.Is(err, employee.ErrEmailExists):
			return result.Failure[employee.EmployeeResponse](employee.MsgDuplicateEmail)
		}
		return errorOccurred[employee.EmployeeResponse]("update", err)
	}

	return result.Success("Employee updated successfully.", employee.NewEmployeeResponse(updated))
}

// DeleteEmployee implements employee.EmployeeService. Attendance records of
// the employee are removed with it.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) result.Response[string] {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return result.Failure[string](employee.MsgNotFound)
		}
		return errorOccurred[string]("delete", err)
	}

	slog.Info("employee deleted", "employee_id", id)
	return result.Success("Employee deleted successfully.", id)
}
