package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no persisted session exists
	ErrSessionNotFound = errors.New("session not found")
)
