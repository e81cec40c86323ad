package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByID returns the employee with department and role names resolved
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail is used by login; the password hash is populated
	GetByEmail(ctx context.Context, email string) (Employee, error)

	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id string) error

	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)

	// ListIDsWithoutAttendanceOn returns employees who joined on or before date
	// and have no attendance record for it.
	ListIDsWithoutAttendanceOn(ctx context.Context, date time.Time) ([]string, error)
}
