package api

import "time"

// Note represents a single markdown note owned by a user.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteRequest is the body of POST /api/v1/notes and PUT /api/v1/notes/{id}
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NotesResponse is returned by GET /api/v1/notes.
// Notes are ordered by updated_at descending.
type NotesResponse struct {
	Notes []Note `json:"notes"`
}

// NoteResponse is returned by endpoints operating on a single note.
type NoteResponse struct {
	Message string `json:"message,omitempty"`
	Note    Note   `json:"note"`
}

// MessageResponse is returned by DELETE /api/v1/notes/{id}.
type MessageResponse struct {
	Message string `json:"message"`
}
