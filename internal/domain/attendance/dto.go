package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateAttendanceRequest struct {
	EmployeeID     string `json:"employee_id"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"attendance_status"`
}

type AttendanceResponse struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   *string   `json:"employee_name,omitempty"`
	DepartmentID   *string   `json:"department_id,omitempty"`
	DepartmentName *string   `json:"department_name,omitempty"`
	RoleName       *string   `json:"role_name,omitempty"`
	AttendanceDate string    `json:"attendance_date"`
	Status         Status    `json:"attendance_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		DepartmentID:   a.DepartmentID,
		DepartmentName: a.DepartmentName,
		RoleName:       a.RoleName,
		AttendanceDate: validator.FormatDate(a.AttendanceDate),
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, NewAttendanceResponse(a))
	}
	return responses
}

// SummaryQuery selects one department on one calendar date.
type SummaryQuery struct {
	DepartmentID string
	Date         time.Time
}

// HistoryQuery selects one employee with optional inclusive date bounds.
type HistoryQuery struct {
	EmployeeID string
	FromDate   *time.Time
	ToDate     *time.Time
}
