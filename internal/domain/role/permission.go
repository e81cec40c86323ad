package role

type Permission string

const (
	// Attendance
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceReport  Permission = "attendance.report"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"

	// Employees
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	// Departments and roles
	PermissionMasterView   Permission = "master.view"
	PermissionMasterManage Permission = "master.manage"
)

// RolePermissions maps role names to their permissions
var RolePermissions = map[string][]Permission{
	Admin: {
		PermissionAttendanceCreate,
		PermissionAttendanceReport,
		PermissionAttendanceViewAll,
		PermissionAttendanceViewOwn,
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionMasterView,
		PermissionMasterManage,
	},
	HR: {
		PermissionAttendanceCreate,
		PermissionAttendanceReport,
		PermissionAttendanceViewAll,
		PermissionAttendanceViewOwn,
		PermissionEmployeeView,
		PermissionMasterView,
	},
	Employee: {
		PermissionAttendanceViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(roleName string, permission Permission) bool {
	for _, p := range RolePermissions[roleName] {
		if p == permission {
			return true
		}
	}
	return false
}
