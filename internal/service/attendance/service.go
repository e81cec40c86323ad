package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/result"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	validator attendance.Validator
	publisher attendance.EventPublisher
	now       func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	attendanceValidator attendance.Validator,
	publisher attendance.EventPublisher,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		validator:            attendanceValidator,
		publisher:            publisher,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

func errorOccurred[T any](op string, err error) result.Response[T] {
	slog.Error("attendance operation failed", "operation", op, "error", err)
	return result.Failure[T](fmt.Sprintf("Error occurred: %s", err.Error()))
}

// CreateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) result.Response[attendance.AttendanceResponse] {
	errs, err := s.validator.ValidateCreate(ctx, req)
	if err != nil {
		return errorOccurred[attendance.AttendanceResponse]("create", err)
	}
	if len(errs) > 0 {
		slog.Warn("attendance rejected", "employee_id", req.EmployeeID, "errors", strings.Join(errs, ", "))
		return result.Invalid[attendance.AttendanceResponse](errs)
	}

	// Both parse after a clean validation
	date, _ := validator.ParseDateTime(req.AttendanceDate)
	status, _ := attendance.ParseStatus(req.Status)

	id, err := uuid.NewV7()
	if err != nil {
		return errorOccurred[attendance.AttendanceResponse]("create", fmt.Errorf("failed to generate attendance id: %w", err))
	}

	now := s.now()
	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		ID:             id.String(),
		EmployeeID:     req.EmployeeID,
		AttendanceDate: date,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		// Lost the race against a concurrent create for the same day
		if errors.Is(err, attendance.ErrAttendanceAlreadyMarked) {
			return result.Failure[attendance.AttendanceResponse](attendance.AlreadyMarkedMessage(validator.FormatDate(date)))
		}
		return errorOccurred[attendance.AttendanceResponse]("create", err)
	}

	s.publishCreated(ctx, created)

	slog.Info("attendance created", "attendance_id", created.ID, "employee_id", created.EmployeeID, "status", created.Status)
	return result.Success(attendance.MsgCreated, attendance.NewAttendanceResponse(created))
}

func (s *AttendanceServiceImpl) publishCreated(ctx context.Context, a attendance.Attendance) {
	if s.publisher == nil {
		return
	}
	event := attendance.CreatedEvent{
		EventType:      attendance.EventTypeCreated,
		AttendanceID:   a.ID,
		EmployeeID:     a.EmployeeID,
		AttendanceDate: validator.FormatDate(a.AttendanceDate),
		Status:         a.Status,
		OccurredAt:     s.now(),
	}
	if err := s.publisher.PublishAttendanceCreated(ctx, event); err != nil {
		slog.Error("failed to publish attendance event", "attendance_id", a.ID, "error", err)
	}
}

// GetSummaryByDepartment implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetSummaryByDepartment(ctx context.Context, q attendance.SummaryQuery) result.Response[[]attendance.AttendanceResponse] {
	errs, err := s.validator.ValidateSummaryQuery(ctx, q.DepartmentID, q.Date)
	if err != nil {
		return errorOccurred[[]attendance.AttendanceResponse]("summary", err)
	}
	if len(errs) > 0 {
		return result.Invalid[[]attendance.AttendanceResponse](errs)
	}

	records, err := s.AttendanceRepository.QueryByDepartmentAndDate(ctx, q.DepartmentID, q.Date)
	if err != nil {
		return errorOccurred[[]attendance.AttendanceResponse]("summary", err)
	}

	return result.Success(attendance.MsgSummaryRetrieved, attendance.NewAttendanceResponses(records))
}

// GetEmployeeHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeHistory(ctx context.Context, q attendance.HistoryQuery) result.Response[[]attendance.AttendanceResponse] {
	errs, err := s.validator.ValidateHistoryQuery(ctx, q.EmployeeID)
	if err != nil {
		return errorOccurred[[]attendance.AttendanceResponse]("history", err)
	}
	if len(errs) > 0 {
		return result.Invalid[[]attendance.AttendanceResponse](errs)
	}

	records, err := s.AttendanceRepository.QueryByEmployeeAndRange(ctx, q.EmployeeID, q.FromDate, q.ToDate)
	if err != nil {
		return errorOccurred[[]attendance.AttendanceResponse]("history", err)
	}

	return result.Success(attendance.MsgHistoryRetrieved, attendance.NewAttendanceResponses(records))
}

// GenerateSummaryCSV implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GenerateSummaryCSV(ctx context.Context, q attendance.SummaryQuery) ([]byte, error) {
	errs, err := s.validator.ValidateSummaryQuery(ctx, q.DepartmentID, q.Date)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return []byte{}, nil
	}

	records, err := s.AttendanceRepository.QueryByDepartmentAndDate(ctx, q.DepartmentID, q.Date)
	if err != nil {
		return nil, err
	}
	return renderCSV(records)
}

// GenerateEmployeeHistoryCSV implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GenerateEmployeeHistoryCSV(ctx context.Context, q attendance.HistoryQuery) ([]byte, error) {
	errs, err := s.validator.ValidateHistoryQuery(ctx, q.EmployeeID)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return []byte{}, nil
	}

	records, err := s.AttendanceRepository.QueryByEmployeeAndRange(ctx, q.EmployeeID, q.FromDate, q.ToDate)
	if err != nil {
		return nil, err
	}
	return renderCSV(records)
}
