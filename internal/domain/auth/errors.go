package auth

import "errors"

var (
	// ErrUnauthorized indicates a missing or expired access token.
	// Recoverable by one refresh cycle.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRefreshFailed indicates the refresh token is invalid, expired or
	// absent. Not recoverable; forces sign-in.
	ErrRefreshFailed = errors.New("refresh failed")
	// ErrInvalidCredentials indicates a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound indicates the user doesn't exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidInput indicates invalid auth input.
	ErrInvalidInput = errors.New("invalid auth input")
)
