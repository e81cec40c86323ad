package attendance

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusOnLeave Status = "ON_LEAVE"
)

var validStatuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusOnLeave}

// ParseStatus accepts any letter case and surrounding whitespace.
func ParseStatus(s string) (Status, bool) {
	normalized := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range validStatuses {
		if st == normalized {
			return st, true
		}
	}
	return "", false
}

type Attendance struct {
	ID             string
	EmployeeID     string
	AttendanceDate time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join
	EmployeeName   *string
	DepartmentID   *string
	DepartmentName *string
	RoleName       *string
}
