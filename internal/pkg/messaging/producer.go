package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Producer publishes attendance events as JSON messages.
type Producer struct {
	sender             MessageSender
	attendanceQueueURL string
}

func NewProducer(sender MessageSender, attendanceQueueURL string) *Producer {
	return &Producer{
		sender:             sender,
		attendanceQueueURL: attendanceQueueURL,
	}
}

// NewSQSProducer wires a Producer to SQS behind a circuit breaker.
func NewSQSProducer(client SQSClient, attendanceQueueURL string) *Producer {
	return NewProducer(NewBreakerSender(NewSQSSender(client), "attendance-events"), attendanceQueueURL)
}

func (p *Producer) PublishAttendanceCreated(ctx context.Context, event attendance.CreatedEvent) error {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("app.employeeId", event.EmployeeID),
			attribute.String("app.attendanceId", event.AttendanceID),
		)
	}
	return p.publish(ctx, p.attendanceQueueURL, event)
}

func (p *Producer) publish(ctx context.Context, destination string, body interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	if err := p.sender.SendMessage(ctx, destination, b); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// NoopPublisher is used when no queue is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishAttendanceCreated(ctx context.Context, event attendance.CreatedEvent) error {
	slog.DebugContext(ctx, "Attendance event not published, no queue configured", "attendance_id", event.AttendanceID)
	return nil
}
