package http

import (
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/role"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Master     MasterHandler
}

func NewRouter(cfg *config.Config, logger *slog.Logger, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(role.PermissionAttendanceCreate)).
					Post("/create-attendance", h.Attendance.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionAttendanceReport))
					r.Get("/summary", h.Attendance.Summary)
					r.Get("/summary/download", h.Attendance.DownloadSummary)
				})
			})

			r.Route("/employee", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionEmployeeManage))
					r.Post("/create-employee", h.Employee.CreateEmployee)
					r.Put("/update-employee/{id}", h.Employee.UpdateEmployee)
					r.Delete("/delete-employee/{id}", h.Employee.DeleteEmployee)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionEmployeeView))
					r.Get("/get-all-employees", h.Employee.ListEmployees)
					r.Get("/get-employee/{id}", h.Employee.GetEmployee)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(role.Admin, role.HR, role.Employee))
					r.Use(middleware.RequireOwnAttendance("id"))
					r.Get("/{id}/attendance", h.Attendance.EmployeeHistory)
					r.Get("/{id}/attendance/download", h.Attendance.DownloadEmployeeHistory)
				})
			})

			r.Route("/department", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionMasterManage))
					r.Post("/create-department", h.Master.CreateDepartment)
					r.Put("/update-department/{id}", h.Master.UpdateDepartment)
					r.Delete("/delete-department/{id}", h.Master.DeleteDepartment)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionMasterView))
					r.Get("/get-all-departments", h.Master.ListDepartments)
					r.Get("/get-department/{id}", h.Master.GetDepartment)
				})
			})

			r.Route("/role", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionMasterManage))
					r.Post("/create-role", h.Master.CreateRole)
					r.Put("/update-role/{id}", h.Master.UpdateRole)
					r.Delete("/delete-role/{id}", h.Master.DeleteRole)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(role.PermissionMasterView))
					r.Get("/get-all-roles", h.Master.ListRoles)
					r.Get("/get-role/{id}", h.Master.GetRole)
				})
			})
		})
	})
	return r
}
