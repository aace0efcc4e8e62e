package models

import "time"

// Note represents a markdown note in server storage.
// UserID is set once at creation and never changes; every storage
// operation on a note is filtered by both ID and UserID.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
