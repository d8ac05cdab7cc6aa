package user

import "errors"

// Domain-specific errors for the user package.
var (
	ErrNotFound      = errors.New("user not found")
	ErrInvalidAPIKey = errors.New("invalid api key")
)
