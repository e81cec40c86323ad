package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/auth"
)

// HandleError maps authentication and authorization errors to HTTP
// responses. Services report everything else through result.Response.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, auth.MsgInvalidCredentials)
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Insufficient permissions")
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
