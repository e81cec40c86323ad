package role

import "errors"

var (
	ErrRoleNotFound   = errors.New("role not found")
	ErrRoleNameExists = errors.New("role with this name already exists")
	ErrRoleInUse      = errors.New("role is still assigned to employees")
)

// Messages returned in failure responses.
const (
	MsgNameRequired = "Role name is required."
	MsgDuplicate    = "Duplicate role found."
	MsgNotFound     = "Role not found."
)
