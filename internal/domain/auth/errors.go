package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("insufficient permissions")
)

const (
	MsgInvalidCredentials = "Invalid email or password."
	MsgLoggedIn           = "User logged in successfully."
)
