package services

import "errors"

// Failure taxonomy surfaced to handlers; wrap with fmt.Errorf("%w: ...")
// so handlers can match with errors.Is while keeping detail in the message.
var (
	ErrFormNotFound = errors.New("form not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("operation not allowed in current form status")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)
