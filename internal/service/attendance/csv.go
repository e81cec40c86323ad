package attendance

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

var csvHeader = []string{"EmployeeId", "EmployeeName", "DepartmentName", "Date", "Status"}

// renderCSV returns an empty slice when there is nothing to export.
func renderCSV(records []attendance.Attendance) ([]byte, error) {
	if len(records) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, a := range records {
		row := []string{
			a.EmployeeID,
			deref(a.EmployeeName),
			deref(a.DepartmentName),
			validator.FormatDate(a.AttendanceDate),
			string(a.Status),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
