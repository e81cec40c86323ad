package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, department Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, department Department) (Department, error)
	Delete(ctx context.Context, id string) error

	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
}
