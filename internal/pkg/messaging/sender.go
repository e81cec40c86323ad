package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/telemetry"
	"github.com/sony/gobreaker"
)

// MessageSender sends a raw message body to a destination queue.
type MessageSender interface {
	SendMessage(ctx context.Context, destination string, body []byte) error
}

// SQSClient is the subset of the AWS SQS client used here.
type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSSender implements MessageSender for AWS SQS.
type SQSSender struct {
	client SQSClient
}

func NewSQSSender(client SQSClient) *SQSSender {
	return &SQSSender{client: client}
}

func (s *SQSSender) SendMessage(ctx context.Context, destination string, body []byte) error {
	_, err := s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:          aws.String(destination),
		MessageBody:       aws.String(string(body)),
		MessageAttributes: telemetry.InjectTraceContext(ctx),
	})
	return err
}

// BreakerSender stops calling the underlying sender while it keeps failing,
// so a broken queue does not slow down every request.
type BreakerSender struct {
	next MessageSender
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerSender(next MessageSender, name string) *BreakerSender {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate is at least 50% after 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerSender{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerSender) SendMessage(ctx context.Context, destination string, body []byte) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.SendMessage(ctx, destination, body)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("message not sent, circuit %s: %w", b.cb.State(), err)
	}
	return err
}
