package services

import "errors"

// Domain errors returned by the services. Handlers match them with errors.Is.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrPostNotFound       = errors.New("post not found")
	ErrForbidden          = errors.New("forbidden")
)
