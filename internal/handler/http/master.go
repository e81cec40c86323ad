package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/role"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// MasterHandler serves departments and roles.
type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateRole(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
	GetRole(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	DeleteRole(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	departmentService department.DepartmentService
	roleService       role.RoleService
}

func NewMasterHandler(departmentService department.DepartmentService, roleService role.RoleService) MasterHandler {
	return &masterHandlerImpl{
		departmentService: departmentService,
		roleService:       roleService,
	}
}

// ========================================
// DEPARTMENT
// ========================================

func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode department request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	response.FromResult(w, h.departmentService.CreateDepartment(r.Context(), req))
}

func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	response.FromResult(w, h.departmentService.GetAllDepartments(r.Context()))
}

func (h *masterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	response.FromResult(w, h.departmentService.GetDepartmentByID(r.Context(), chi.URLParam(r, "id")))
}

func (h *masterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode department request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	response.FromResult(w, h.departmentService.UpdateDepartment(r.Context(), req))
}

func (h *masterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	response.FromResult(w, h.departmentService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")))
}

// ========================================
// ROLE
// ========================================

func (h *masterHandlerImpl) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req role.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode role request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	response.FromResult(w, h.roleService.CreateRole(r.Context(), req))
}

func (h *masterHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	response.FromResult(w, h.roleService.GetAllRoles(r.Context()))
}

func (h *masterHandlerImpl) GetRole(w http.ResponseWriter, r *http.Request) {
	response.FromResult(w, h.roleService.GetRoleByID(r.Context(), chi.URLParam(r, "id")))
}

func (h *masterHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode role request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	response.FromResult(w, h.roleService.UpdateRole(r.Context(), req))
}

func (h *masterHandlerImpl) DeleteRole(w http.ResponseWriter, r *http.Request) {
	response.FromResult(w, h.roleService.DeleteRole(r.Context(), chi.URLParam(r, "id")))
}
