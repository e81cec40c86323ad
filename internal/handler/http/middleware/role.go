package middleware

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/role"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleName, ok := claims["role"].(string)
	return roleName, ok && roleName != ""
}

// RequireRoles allows only the listed roles
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleName, ok := roleFromContext(r)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if !slices.Contains(roles, roleName) {
				response.HandleError(w, auth.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission checks if user has specific permission
func RequirePermission(permission role.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleName, ok := roleFromContext(r)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			if !role.HasPermission(roleName, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, roleName))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireOwnAttendance lets roles with attendance.view_all through and
// restricts attendance.view_own to the employee named by the URL param.
func RequireOwnAttendance(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwt.ClaimsFromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			switch {
			case role.HasPermission(claims.Role, role.PermissionAttendanceViewAll):
			case role.HasPermission(claims.Role, role.PermissionAttendanceViewOwn) && claims.EmployeeID == chi.URLParam(r, param):
			default:
				response.Forbidden(w, "Employees can only view their own attendance")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
