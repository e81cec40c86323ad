package department

import "errors"

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameExists = errors.New("department with this name already exists")
	ErrDepartmentInUse      = errors.New("department still has employees")
)

const (
	MsgNameRequired = "Department name is required."
	MsgDuplicate    = "Duplicate department found."
	MsgNotFound     = "Department not found."
)
