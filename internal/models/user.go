package models

import "time"

// User represents a registered user in server storage.
// PasswordHash is a bcrypt hash and must never leave the server.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
