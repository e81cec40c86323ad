package attendance

import (
	"context"
	"time"
)

const EventTypeCreated = "attendance.created"

type CreatedEvent struct {
	EventType      string    `json:"eventType"`
	AttendanceID   string    `json:"attendanceId"`
	EmployeeID     string    `json:"employeeId"`
	AttendanceDate string    `json:"attendanceDate"`
	Status         Status    `json:"status"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// EventPublisher receives domain events after they are committed.
type EventPublisher interface {
	PublishAttendanceCreated(ctx context.Context, event CreatedEvent) error
}
