package errors

import (
	"errors"
)

// The closed set of auth failure kinds. Handlers collapse all of them into a
// single unauthorized response; the distinction only ever reaches the logs.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
	ErrTokenInvalid         = errors.New("refresh token invalid")
	ErrTokenExpired         = errors.New("refresh token expired")
	ErrTokenReuseDetected   = errors.New("refresh token reuse detected")
	ErrUserNotFound         = errors.New("user not found")
)
