package attendance

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

type memEmployee struct {
	name         string
	departmentID string
}

// memStore is an in-memory stand-in for the attendance, employee and
// department tables. It enforces the same one-record-per-day constraint.
type memStore struct {
	mu          sync.Mutex
	employees   map[string]memEmployee
	departments map[string]string
	records     []attendance.Attendance

	createErr error
	queryErr  error
	lookupErr error
}

func newMemStore() *memStore {
	return &memStore{
		employees:   map[string]memEmployee{},
		departments: map[string]string{},
	}
}

func (m *memStore) addDepartment(id, name string) {
	m.departments[id] = name
}

func (m *memStore) addEmployee(id, name, departmentID string) {
	m.employees[id] = memEmployee{name: name, departmentID: departmentID}
}

func sameDay(a, b time.Time) bool {
	return validator.FormatDate(a) == validator.FormatDate(b)
}

func (m *memStore) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return attendance.Attendance{}, m.createErr
	}
	for _, existing := range m.records {
		if existing.EmployeeID == a.EmployeeID && sameDay(existing.AttendanceDate, a.AttendanceDate) {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		}
	}
	m.records = append(m.records, a)
	return a, nil
}

func (m *memStore) resolve(a attendance.Attendance) attendance.Attendance {
	emp, ok := m.employees[a.EmployeeID]
	if !ok {
		return a
	}
	name := emp.name
	deptID := emp.departmentID
	deptName := m.departments[deptID]
	a.EmployeeName = &name
	a.DepartmentID = &deptID
	a.DepartmentName = &deptName
	return a
}

func (m *memStore) sorted(records []attendance.Attendance) []attendance.Attendance {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AttendanceDate.After(records[j].AttendanceDate)
	})
	return records
}

func (m *memStore) QueryByDepartmentAndDate(_ context.Context, departmentID string, date time.Time) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.queryErr != nil {
		return nil, m.queryErr
	}
	out := []attendance.Attendance{}
	for _, a := range m.records {
		if m.employees[a.EmployeeID].departmentID == departmentID && sameDay(a.AttendanceDate, date) {
			out = append(out, m.resolve(a))
		}
	}
	return m.sorted(out), nil
}

func (m *memStore) QueryByEmployeeAndRange(_ context.Context, employeeID string, fromDate, toDate *time.Time) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.queryErr != nil {
		return nil, m.queryErr
	}
	out := []attendance.Attendance{}
	for _, a := range m.records {
		if a.EmployeeID != employeeID {
			continue
		}
		day := validator.FormatDate(a.AttendanceDate)
		if fromDate != nil && day < validator.FormatDate(*fromDate) {
			continue
		}
		if toDate != nil && day > validator.FormatDate(*toDate) {
			continue
		}
		out = append(out, m.resolve(a))
	}
	return m.sorted(out), nil
}

func (m *memStore) ExistsForEmployeeOnDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lookupErr != nil {
		return false, m.lookupErr
	}
	for _, a := range m.records {
		if a.EmployeeID == employeeID && sameDay(a.AttendanceDate, date) {
			return true, nil
		}
	}
	return false, nil
}

type employeeLookup struct{ *memStore }

func (l employeeLookup) ExistsByID(_ context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lookupErr != nil {
		return false, l.lookupErr
	}
	_, ok := l.employees[id]
	return ok, nil
}

type departmentLookup struct{ *memStore }

func (l departmentLookup) ExistsByID(_ context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lookupErr != nil {
		return false, l.lookupErr
	}
	_, ok := l.departments[id]
	return ok, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []attendance.CreatedEvent
	err    error
}

func (p *recordingPublisher) PublishAttendanceCreated(_ context.Context, event attendance.CreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

var errStorage = errors.New("connection refused")

func newTestService(store *memStore, publisher attendance.EventPublisher) attendance.AttendanceService {
	v := NewValidator(employeeLookup{store}, departmentLookup{store}, store)
	return NewAttendanceService(store, v, publisher)
}
