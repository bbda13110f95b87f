package services

import "errors"

// ValidationError reports a payload that failed the server-side checks. The
// handler layer maps it to a 400.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

var (
	// ErrNotFound covers both a missing record and a record owned by
	// someone else; callers cannot tell the two apart.
	ErrNotFound = errors.New("application not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)
