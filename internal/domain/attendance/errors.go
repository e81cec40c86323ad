package attendance

import (
	"errors"
	"fmt"
)

var (
	// ErrAttendanceAlreadyMarked is returned by the repository when the
	// (employee, date) unique index rejects an insert.
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this employee and date")
)

const (
	MsgEmployeeIDRequired   = "EmployeeId is required."
	MsgEmployeeNotFound     = "Employee not found."
	MsgDateRequired         = "AttendanceDate is required."
	MsgInvalidDate          = "Invalid AttendanceDate."
	MsgInvalidStatus        = "Invalid AttendanceStatus."
	MsgDepartmentIDRequired = "Department Id is required."
	MsgDepartmentNotFound   = "Department not found."
	MsgSummaryDateRequired  = "Date is required."

	MsgCreated          = "Attendance created successfully."
	MsgSummaryRetrieved = "Attendance summary retrieved successfully."
	MsgHistoryRetrieved = "Employee attendance history retrieved successfully."
)

// AlreadyMarkedMessage names the conflicting date as YYYY-MM-DD.
func AlreadyMarkedMessage(date string) string {
	return fmt.Sprintf("Attendance already marked for this employee for date %s.", date)
}
