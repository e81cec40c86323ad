package employee

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/role"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byID    map[string]employee.Employee
	listErr error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]employee.Employee{}}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = uuid.NewString()
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(context.Context) ([]employee.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []employee.Employee{}
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	if _, ok := f.byID[e.ID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email, excludeID string) (bool, error) {
	for id, e := range f.byID {
		if id != excludeID && strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

type fakeDepartments struct {
	department.DepartmentRepository
	ids map[string]bool
}

func (f fakeDepartments) ExistsByID(_ context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

type fakeRoles struct {
	role.RoleRepository
	ids map[string]bool
}

func (f fakeRoles) ExistsByID(_ context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

const (
	deptID = "dept-eng"
	roleID = "role-hr"
)

func newTestService() (*EmployeeServiceImpl, *fakeEmployeeRepo) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(
		repo,
		fakeDepartments{ids: map[string]bool{deptID: true}},
		fakeRoles{ids: map[string]bool{roleID: true}},
	).(*EmployeeServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validCreate() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Password:     "s3cret!",
		DepartmentID: deptID,
		RoleID:       roleID,
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, repo := newTestService()

	res := svc.CreateEmployee(context.Background(), validCreate())

	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Employee created successfully.", res.Message)
	require.NotNil(t, res.Result)

	stored := repo.byID[*res.Result]
	assert.Equal(t, "Jane Doe", stored.Name)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), stored.JoinDate)
	assert.NotEqual(t, "s3cret!", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret!")))
}

func TestCreateEmployee_Rules(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	require.True(t, svc.CreateEmployee(ctx, validCreate()).Success)

	tests := []struct {
		name   string
		mutate func(r *employee.CreateEmployeeRequest)
		want   string
	}{
		{"missing name", func(r *employee.CreateEmployeeRequest) { r.Name = " " }, "Employee name is required."},
		{"missing email", func(r *employee.CreateEmployeeRequest) { r.Email = "" }, "Employee email is required."},
		{"bad email", func(r *employee.CreateEmployeeRequest) { r.Email = "jane@" }, "Invalid email format."},
		{"missing password", func(r *employee.CreateEmployeeRequest) { r.Password = "" }, "Password is required."},
		{"bad join date", func(r *employee.CreateEmployeeRequest) { r.JoinDate = "yesterday" }, "Invalid JoinDate."},
		{"unknown department", func(r *employee.CreateEmployeeRequest) { r.DepartmentID = "nope" }, "Department not found."},
		{"unknown role", func(r *employee.CreateEmployeeRequest) { r.RoleID = "nope" }, "Role not found."},
		{"duplicate email", func(r *employee.CreateEmployeeRequest) { r.Email = "JANE@example.com" }, "Duplicate email found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)
			res := svc.CreateEmployee(ctx, req)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Message)
		})
	}
}

func TestCreateEmployee_AllRulesReported(t *testing.T) {
	svc, _ := newTestService()

	res := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{})

	assert.False(t, res.Success)
	assert.Equal(t, "Employee name is required., Employee email is required., Password is required., Department not found., Role not found.", res.Message)
}

func TestUpdateEmployee(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created := svc.CreateEmployee(ctx, validCreate())
	require.True(t, created.Success)
	other := validCreate()
	other.Email = "john@example.com"
	require.True(t, svc.CreateEmployee(ctx, other).Success)

	res := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID: *created.Result, Name: "Jane Smith", Email: "jane@example.com", DepartmentID: deptID, RoleID: roleID,
	})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Employee updated successfully.", res.Message)
	assert.Equal(t, "Jane Smith", repo.byID[*created.Result].Name)

	taken := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID: *created.Result, Name: "Jane", Email: "john@example.com", DepartmentID: deptID, RoleID: roleID,
	})
	assert.False(t, taken.Success)
	assert.Equal(t, "Duplicate email found.", taken.Message)

	missing := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: "ghost", Name: "x", Email: "x@example.com"})
	assert.False(t, missing.Success)
	assert.Equal(t, "Employee not found.", missing.Message)
}

func TestGetAndDeleteEmployee(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created := svc.CreateEmployee(ctx, validCreate())
	require.True(t, created.Success)

	got := svc.GetEmployeeByID(ctx, *created.Result)
	require.True(t, got.Success)
	assert.Equal(t, "Employee retrieved successfully.", got.Message)
	assert.Equal(t, "2024-03-01", got.Result.JoinDate)

	all := svc.GetAllEmployees(ctx)
	require.True(t, all.Success)
	assert.Len(t, *all.Result, 1)

	deleted := svc.DeleteEmployee(ctx, *created.Result)
	assert.True(t, deleted.Success)
	assert.Equal(t, "Employee deleted successfully.", deleted.Message)
	assert.Empty(t, repo.byID)

	again := svc.DeleteEmployee(ctx, *created.Result)
	assert.False(t, again.Success)
	assert.Equal(t, "Employee not found.", again.Message)

	gone := svc.GetEmployeeByID(ctx, *created.Result)
	assert.False(t, gone.Success)
	assert.Nil(t, gone.Result)
}

func TestGetAllEmployees_Failure(t *testing.T) {
	svc, repo := newTestService()
	repo.listErr = errors.New("timeout")

	res := svc.GetAllEmployees(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, "An error occurred: timeout", res.Message)
}
