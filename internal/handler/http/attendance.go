package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const msgNoAttendanceRecords = "No attendance records found for the given criteria."

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	DownloadSummary(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
	DownloadEmployeeHistory(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// parseDateParam returns nil for an absent parameter.
func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	t, ok := validator.ParseDateTime(raw)
	if !ok {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &t, nil
}

func parseSummaryQuery(r *http.Request) (attendance.SummaryQuery, error) {
	q := attendance.SummaryQuery{DepartmentID: strings.TrimSpace(r.URL.Query().Get("departmentId"))}
	date, err := parseDateParam(r, "date")
	if err != nil {
		return q, err
	}
	if date != nil {
		q.Date = *date
	}
	return q, nil
}

func parseHistoryQuery(r *http.Request) (attendance.HistoryQuery, error) {
	q := attendance.HistoryQuery{EmployeeID: chi.URLParam(r, "id")}
	var err error
	if q.FromDate, err = parseDateParam(r, "fromDate"); err != nil {
		return q, err
	}
	if q.ToDate, err = parseDateParam(r, "toDate"); err != nil {
		return q, err
	}
	return q, nil
}

// Create implements AttendanceHandler.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	response.FromResult(w, h.attendanceService.CreateAttendance(r.Context(), req))
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	q, err := parseSummaryQuery(r)
	if err != nil {
		response.BadRequest(w, "Invalid date format", map[string]string{"date": err.Error()})
		return
	}

	response.FromResult(w, h.attendanceService.GetSummaryByDepartment(r.Context(), q))
}

// DownloadSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) DownloadSummary(w http.ResponseWriter, r *http.Request) {
	q, err := parseSummaryQuery(r)
	if err != nil {
		response.BadRequest(w, "Invalid date format", map[string]string{"date": err.Error()})
		return
	}

	data, err := h.attendanceService.GenerateSummaryCSV(r.Context(), q)
	if err != nil {
		slog.Error("Failed to generate attendance summary csv", "department_id", q.DepartmentID, "error", err)
		response.InternalServerError(w, "Failed to generate attendance summary")
		return
	}
	if len(data) == 0 {
		response.NotFound(w, msgNoAttendanceRecords)
		return
	}

	filename := fmt.Sprintf("AttendanceSummary_%s_%s.csv", q.DepartmentID, q.Date.Format("20060102"))
	response.CSV(w, filename, data)
}

// EmployeeHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	q, err := parseHistoryQuery(r)
	if err != nil {
		response.BadRequest(w, "Invalid date format", map[string]string{"date": err.Error()})
		return
	}

	response.FromResult(w, h.attendanceService.GetEmployeeHistory(r.Context(), q))
}

// DownloadEmployeeHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) DownloadEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	q, err := parseHistoryQuery(r)
	if err != nil {
		response.BadRequest(w, "Invalid date format", map[string]string{"date": err.Error()})
		return
	}

	data, err := h.attendanceService.GenerateEmployeeHistoryCSV(r.Context(), q)
	if err != nil {
		slog.Error("Failed to generate attendance history csv", "employee_id", q.EmployeeID, "error", err)
		response.InternalServerError(w, "Failed to generate attendance history")
		return
	}
	if len(data) == 0 {
		response.NotFound(w, msgNoAttendanceRecords)
		return
	}

	response.CSV(w, fmt.Sprintf("AttendanceHistory_%s.csv", q.EmployeeID), data)
}
