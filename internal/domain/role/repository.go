package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, role Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, role Role) (Role, error)
	Delete(ctx context.Context, id string) error

	// ExistsByID reports whether a role with the given id exists
	ExistsByID(ctx context.Context, id string) (bool, error)

	// ExistsByName reports whether another role already uses name.
	// excludeID may be empty.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
}
