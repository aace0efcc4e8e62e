package storage

import (
	"context"

	"github.com/akarpov/marknote/internal/models"
)

// NoteStorage defines interface for note persistence.
// Every read, update and delete is scoped by both note id and owner id;
// a note is never visible to any user other than its owner.
type NoteStorage interface {
	// CreateNote inserts a new note. ID, timestamps and UserID must be
	// set by the caller.
	CreateNote(ctx context.Context, note *models.Note) error

	// GetNote retrieves a single note owned by userID.
	// Returns ErrNoteNotFound if no owned note matches.
	GetNote(ctx context.Context, id, userID string) (*models.Note, error)

	// ListNotes returns all notes owned by userID, ordered by
	// updated_at descending (most recently touched first).
	ListNotes(ctx context.Context, userID string) ([]*models.Note, error)

	// UpdateNote replaces title and content of an owned note and
	// refreshes updated_at. Returns ErrNoteNotFound if no owned note
	// matches, and the updated note otherwise.
	UpdateNote(ctx context.Context, id, userID, title, content string) (*models.Note, error)

	// DeleteNote removes an owned note.
	// Returns ErrNoteNotFound if no owned note matches.
	DeleteNote(ctx context.Context, id, userID string) error
}
