// Package result holds the envelope returned by the business services.
package result

import "strings"

// Response carries the outcome of a service operation. Result is nil on failure.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  *T     `json:"result,omitempty"`
}

func Success[T any](message string, value T) Response[T] {
	return Response[T]{Success: true, Message: message, Result: &value}
}

func Failure[T any](message string) Response[T] {
	return Response[T]{Success: false, Message: message}
}

// Invalid builds a failure from validation messages joined by ", ".
func Invalid[T any](messages []string) Response[T] {
	return Failure[T](strings.Join(messages, ", "))
}
