package department

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

func errorOccurred[T any](op string, err error) result.Response[T] {
	slog.Error("department operation failed", "operation", op, "error", err)
	return result.Failure[T](fmt.Sprintf("An error occurred: %s", err.Error()))
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) result.Response[department.DepartmentResponse] {
	msgs := req.Validate().Messages()
	if len(msgs) == 0 {
		taken, err := s.departmentRepo.ExistsByName(ctx, req.Name, "")
		if err != nil {
			return errorOccurred[department.DepartmentResponse]("create", err)
		}
		if taken {
			msgs = append(msgs, department.MsgDuplicate)
		}
	}
	if len(msgs) > 0 {
		return result.Invalid[department.DepartmentResponse](msgs)
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNameExists) {
			return result.Failure[department.DepartmentResponse](department.MsgDuplicate)
		}
		return errorOccurred[department.DepartmentResponse]("create", err)
	}

	return result.Success("Department created successfully.", department.NewDepartmentResponse(created))
}

// GetAllDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetAllDepartments(ctx context.Context) result.Response[[]department.DepartmentResponse] {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return errorOccurred[[]department.DepartmentResponse]("list", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.NewDepartmentResponse(d))
	}
	return result.Success("Departments retrieved successfully.", responses)
}

// GetDepartmentByID implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartmentByID(ctx context.Context, id string) result.Response[department.DepartmentResponse] {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return result.Failure[department.DepartmentResponse](department.MsgNotFound)
		}
		return errorOccurred[department.DepartmentResponse]("get", err)
	}
	return result.Success("Department retrieved successfully.", department.NewDepartmentResponse(d))
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) result.Response[department.DepartmentResponse] {
	exists, err := s.departmentRepo.ExistsByID(ctx, req.ID)
	if err != nil {
		return errorOccurred[department.DepartmentResponse]("update", err)
	}
	if !exists {
		return result.Failure[department.DepartmentResponse](department.MsgNotFound)
	}

	msgs := req.Validate().Messages()
	if len(msgs) == 0 {
		taken, err := s.departmentRepo.ExistsByName(ctx, req.Name, req.ID)
		if err != nil {
			return errorOccurred[department.DepartmentResponse]("update", err)
		}
		if taken {
			msgs = append(msgs, department.MsgDuplicate)
		}
	}
	if len(msgs) > 0 {
		return result.Invalid[department.DepartmentResponse](msgs)
	}

	updated, err := s.departmentRepo.Update(ctx, department.Department{ID: req.ID, Name: strings.TrimSpace(req.Name)})
	if err != nil {
		switch {
		case errors.Is(err, department.ErrDepartmentNotFound):
			return result.Failure[department.DepartmentResponse](department.MsgNotFound)
		case errors.Is(err, department.ErrDepartmentNameExists):
			return result.Failure[department.DepartmentResponse](department.MsgDuplicate)
		}
		return errorOccurred[department.DepartmentResponse]("update", err)
	}

	return result.Success("Department updated successfully.", department.NewDepartmentResponse(updated))
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) result.Response[string] {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return result.Failure[string](department.MsgNotFound)
		}
		return errorOccurred[string]("delete", err)
	}
	return result.Success("Department deleted successfully.", id)
}
