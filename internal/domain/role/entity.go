package role

import "time"

// Names of the roles the API authorizes against.
const (
	Admin    = "Admin"
	HR       = "HR"
	Employee = "Employee"
)

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
