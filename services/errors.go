package services

import "errors"

// Sentinel errors for handler status mapping. Wrap with context via
// fmt.Errorf("...: %w", Err...) so errors.Is keeps working.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
	ErrUnauthorized = errors.New("unauthorized")
)
