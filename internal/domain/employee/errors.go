package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
)

const (
	MsgNameRequired       = "Employee name is required."
	MsgEmailRequired      = "Employee email is required."
	MsgInvalidEmail       = "Invalid email format."
	MsgPasswordRequired   = "Password is required."
	MsgInvalidJoinDate    = "Invalid JoinDate."
	MsgDepartmentNotFound = "Department not found."
	MsgRoleNotFound       = "Role not found."
	MsgDuplicateEmail     = "Duplicate email found."
	MsgNotFound           = "Employee not found."
)
