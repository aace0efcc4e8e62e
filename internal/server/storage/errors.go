package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates that a user with this username already exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken indicates that a user with this email already exists
	ErrEmailTaken = errors.New("email already registered")

	// ErrNoteNotFound indicates that no note matched the id for the given
	// owner. Storage does not distinguish "does not exist" from "owned by
	// someone else"; both surface as this error.
	ErrNoteNotFound = errors.New("note not found")
)
