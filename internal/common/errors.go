// Package common defines shared constants and sentinel errors used across
// studyshare components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Identity errors.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a caller cannot tell which part failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoActiveSession is returned by operations that require a logged-in user.
	ErrNoActiveSession = errors.New("no active session")

	// ErrInvalidInput marks a submitted record that fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
