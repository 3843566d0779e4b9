package auth

import "errors"

// Auth-related errors
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrReadOnlySession is returned when a viewer (or no one) attempts a change
	ErrReadOnlySession = errors.New("this account has read-only access")
)
