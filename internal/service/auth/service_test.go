package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byEmail map[string]employee.Employee
	err     error
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	if f.err != nil {
		return employee.Employee{}, f.err
	}
	e, ok := f.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeEmployeeService struct {
	employee.EmployeeService
	created []employee.CreateEmployeeRequest
}

func (f *fakeEmployeeService) CreateEmployee(_ context.Context, req employee.CreateEmployeeRequest) result.Response[string] {
	f.created = append(f.created, req)
	return result.Success("Employee created successfully.", "new-id")
}

func newTestAuthService(t *testing.T) (auth.AuthService, *fakeEmployeeRepo, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hrRole := "HR"

	repo := &fakeEmployeeRepo{byEmail: map[string]employee.Employee{
		"jane@example.com": {
			ID:           "0190b2f4-0000-7000-8000-0000000000e1",
			Name:         "Jane Doe",
			Email:        "jane@example.com",
			PasswordHash: string(hash),
			RoleName:     &hrRole,
		},
	}}

	jwtService, err := jwt.NewJWTService(testSecret, "attendance-tracker", "attendance-tracker-clients", testAccessExp)
	require.NoError(t, err)

	return NewAuthService(repo, &fakeEmployeeService{}, jwtService), repo, jwtService
}

func TestLogin_Success(t *testing.T) {
	svc, _, jwtService := newTestAuthService(t)

	res := svc.Login(context.Background(), auth.LoginRequest{Email: "jane@example.com", Password: "password123"})

	require.True(t, res.Success, res.Message)
	assert.Equal(t, "User logged in successfully.", res.Message)
	assert.Equal(t, "0190b2f4-0000-7000-8000-0000000000e1", res.Result.EmployeeID)
	assert.Equal(t, "HR", res.Result.Role)
	assert.Equal(t, "Jane Doe", res.Result.Name)

	token, err := jwtauth.VerifyToken(jwtService.JWTAuth(), res.Result.Token)
	require.NoError(t, err)
	role, ok := token.Get("role")
	require.True(t, ok)
	assert.Equal(t, "HR", role)
}

func TestLogin_Failures(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"wrong password", auth.LoginRequest{Email: "jane@example.com", Password: "nope"}},
		{"unknown email", auth.LoginRequest{Email: "who@example.com", Password: "password123"}},
		{"empty request", auth.LoginRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Login(ctx, tt.req)
			assert.False(t, res.Success)
			assert.Nil(t, res.Result)
			assert.Equal(t, "Invalid email or password.", res.Message)
		})
	}

	repo.err = errors.New("connection reset")
	res := svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: "password123"})
	assert.False(t, res.Success)
	assert.Equal(t, "An error occurred: connection reset", res.Message)
}

func TestRegister_DelegatesToEmployeeService(t *testing.T) {
	employees := &fakeEmployeeService{}
	svc := NewAuthService(&fakeEmployeeRepo{}, employees, nil)

	res := svc.Register(context.Background(), employee.CreateEmployeeRequest{Name: "New Hire"})

	assert.True(t, res.Success)
	assert.Equal(t, "new-id", *res.Result)
	require.Len(t, employees.created, 1)
	assert.Equal(t, "New Hire", employees.created[0].Name)
}
