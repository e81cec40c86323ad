package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	deptIT    = "0190b2f4-0000-7000-8000-000000000001"
	employee1 = "0190b2f4-0000-7000-8000-0000000000e1"
)

func newTestValidator(store *memStore) attendance.Validator {
	return NewValidator(employeeLookup{store}, departmentLookup{store}, store)
}

func TestValidateCreate(t *testing.T) {
	store := newMemStore()
	store.addDepartment(deptIT, "IT")
	store.addEmployee(employee1, "Jane Doe", deptIT)
	store.records = append(store.records, attendance.Attendance{
		ID:             "existing",
		EmployeeID:     employee1,
		AttendanceDate: time.Date(2024, 1, 9, 17, 0, 0, 0, time.UTC),
		Status:         attendance.StatusPresent,
	})
	v := newTestValidator(store)

	tests := []struct {
		name string
		req  attendance.CreateAttendanceRequest
		want []string
	}{
		{
			name: "valid",
			req:  attendance.CreateAttendanceRequest{EmployeeID: employee1, AttendanceDate: "2024-01-10", Status: "PRESENT"},
			want: []string{},
		},
		{
			name: "lowercase status",
			req:  attendance.CreateAttendanceRequest{EmployeeID: employee1, AttendanceDate: "2024-01-10", Status: "on_leave"},
			want: []string{},
		},
		{
			name: "everything missing",
			req:  attendance.CreateAttendanceRequest{},
			want: []string{
				attendance.MsgEmployeeIDRequired,
				attendance.MsgDateRequired,
				attendance.MsgInvalidStatus,
			},
		},
		{
			name: "unknown employee",
			req:  attendance.CreateAttendanceRequest{EmployeeID: "0190b2f4-0000-7000-8000-00000000ffff", AttendanceDate: "2024-01-10", Status: "LATE"},
			want: []string{attendance.MsgEmployeeNotFound},
		},
		{
			name: "malformed date",
			req:  attendance.CreateAttendanceRequest{EmployeeID: employee1, AttendanceDate: "10/01/2024", Status: "LATE"},
			want: []string{attendance.MsgInvalidDate},
		},
		{
			name: "zero date counts as missing",
			req:  attendance.CreateAttendanceRequest{EmployeeID: employee1, AttendanceDate: "0001-01-01", Status: "PRESENT"},
			want: []string{attendance.MsgDateRequired},
		},
		{
			name: "zero timestamp counts as missing",
			req:  attendance.CreateAttendanceRequest{EmployeeID: employee1, AttendanceDate: "0001-01-01T00:00:00", Status: "PRESENT"},
			want: []string{attendance.MsgDateRequired},
		},
		{
			name: "nil employee id counts as missing",
			req:  attendance.CreateAttendanceRequest{EmployeeID: "00000000-0000-0000-0000-000000000000", AttendanceDate: "2024-01-10", Status: "PRESENT"},
			want: []string{attendance.MsgEmployeeIDRequired},
		},
		{
			name: "unknown status",
			req:  attendance.CreateAttendanceRequest{EmployeeID: employee1, AttendanceDate: "2024-01-10", Status: "REMOTE"},
			want: []string{attendance.MsgInvalidStatus},
		},
		{
			name: "same day ignores time of day",
			req:  attendance.CreateAttendanceRequest{EmployeeID: employee1, AttendanceDate: "2024-01-09T08:00:00", Status: "PRESENT"},
			want: []string{"Attendance already marked for this employee for date 2024-01-09."},
		},
		{
			name: "duplicate and bad status both reported",
			req:  attendance.CreateAttendanceRequest{EmployeeID: employee1, AttendanceDate: "2024-01-09", Status: "?"},
			want: []string{
				attendance.MsgInvalidStatus,
				"Attendance already marked for this employee for date 2024-01-09.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateCreate(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCreate_LookupFailure(t *testing.T) {
	store := newMemStore()
	store.lookupErr = errStorage
	v := newTestValidator(store)

	_, err := v.ValidateCreate(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: employee1, AttendanceDate: "2024-01-10", Status: "PRESENT",
	})
	assert.ErrorIs(t, err, errStorage)
}

func TestValidateSummaryQuery(t *testing.T) {
	store := newMemStore()
	store.addDepartment(deptIT, "IT")
	v := newTestValidator(store)
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		departmentID string
		date         time.Time
		want         []string
	}{
		{"valid", deptIT, day, []string{}},
		{"missing both", "", time.Time{}, []string{attendance.MsgDepartmentIDRequired, attendance.MsgSummaryDateRequired}},
		{"unknown department", "0190b2f4-0000-7000-8000-00000000dddd", day, []string{attendance.MsgDepartmentNotFound}},
		{"missing date", deptIT, time.Time{}, []string{attendance.MsgSummaryDateRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateSummaryQuery(context.Background(), tt.departmentID, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateHistoryQuery(t *testing.T) {
	store := newMemStore()
	store.addEmployee(employee1, "Jane Doe", deptIT)
	v := newTestValidator(store)

	got, err := v.ValidateHistoryQuery(context.Background(), employee1)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = v.ValidateHistoryQuery(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, []string{attendance.MsgEmployeeNotFound}, got)

	got, err = v.ValidateHistoryQuery(context.Background(), " ")
	require.NoError(t, err)
	assert.Equal(t, []string{attendance.MsgEmployeeNotFound}, got)
}
