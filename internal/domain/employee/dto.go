package employee

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	JoinDate     string `json:"join_date"`
	DepartmentID string `json:"department_id"`
	RoleID       string `json:"role_id"`
}

// Validate checks the fields that need no lookup. Lookups are done by the service.
func (r *CreateEmployeeRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: MsgNameRequired})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: MsgEmailRequired})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: MsgInvalidEmail})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: MsgPasswordRequired})
	}

	if !validator.IsEmpty(r.JoinDate) {
		if _, ok := validator.ParseDateTime(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: MsgInvalidJoinDate})
		}
	}

	return errs
}

type UpdateEmployeeRequest struct {
	ID           string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	DepartmentID string `json:"department_id"`
	RoleID       string `json:"role_id"`
}

func (r *UpdateEmployeeRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: MsgNameRequired})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: MsgEmailRequired})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: MsgInvalidEmail})
	}

	return errs
}

type EmployeeResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	JoinDate       string    `json:"join_date"`
	DepartmentID   string    `json:"department_id"`
	DepartmentName *string   `json:"department_name,omitempty"`
	RoleID         string    `json:"role_id"`
	RoleName       *string   `json:"role_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		JoinDate:       validator.FormatDate(e.JoinDate),
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		RoleID:         e.RoleID,
		RoleName:       e.RoleName,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
