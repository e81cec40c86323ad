package employee

import "time"

type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	JoinDate     time.Time
	DepartmentID string
	RoleID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	DepartmentName *string
	RoleName       *string
}
