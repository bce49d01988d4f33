// Package common defines shared constants and sentinel errors used across
// client and server layers of the user directory. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("user not found")
	ErrorConflict = errors.New("username already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors.
	ErrorInvalidCredentials = errors.New("invalid username or password")
)
