// Package notes holds the client's in-memory note collection and the
// active-note selection, mirroring server state.
package notes

import (
	"context"
	"sync"

	"github.com/akarpov/marknote/pkg/api"
)

// NotesAPI is the server API surface the manager needs
type NotesAPI interface {
	ListNotes(ctx context.Context, token string) ([]api.Note, error)
	GetNote(ctx context.Context, token, id string) (*api.Note, error)
	CreateNote(ctx context.Context, token, title, content string) (*api.Note, error)
	UpdateNote(ctx context.Context, token, id, title, content string) (*api.Note, error)
	DeleteNote(ctx context.Context, token, id string) error
}

// TokenSource supplies the current bearer token
type TokenSource interface {
	Token() string
}

// Manager holds the ordered note collection and a nullable active
// selection. All service errors propagate to the caller unchanged;
// there is no local retry.
type Manager struct {
	mu       sync.Mutex
	client   NotesAPI
	tokens   TokenSource
	notes    []api.Note
	activeID string
}

// NewManager creates an empty notes manager
func NewManager(client NotesAPI, tokens TokenSource) *Manager {
	return &Manager{
		client: client,
		tokens: tokens,
	}
}

// Refresh replaces the local collection with the server's list
// (ordered by updated_at descending). Called when authentication
// becomes true.
func (m *Manager) Refresh(ctx context.Context) error {
	notes, err := m.client.ListNotes(ctx, m.tokens.Token())
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = notes
	m.activeID = ""
	return nil
}

// Clear drops the collection and selection. Called when
// authentication becomes false.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = nil
	m.activeID = ""
}

// Create stores a new note on the server and prepends it locally.
// The new note is not auto-selected; the caller decides.
func (m *Manager) Create(ctx context.Context, title, content string) (*api.Note, error) {
	note, err := m.client.CreateNote(ctx, m.tokens.Token(), title, content)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append([]api.Note{*note}, m.notes...)
	return note, nil
}

// Update saves new title/content for a note and replaces the matching
// entry in place, preserving collection order.
func (m *Manager) Update(ctx context.Context, id, title, content string) (*api.Note, error) {
	note, err := m.client.UpdateNote(ctx, m.tokens.Token(), id, title, content)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes[i] = *note
			break
		}
	}
	return note, nil
}

// Delete removes a note on the server and locally. If the deleted
// note was the active selection, the selection is cleared.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.client.DeleteNote(ctx, m.tokens.Token(), id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			break
		}
	}
	if m.activeID == id {
		m.activeID = ""
	}
	return nil
}

// Fetch retrieves a single note from the server without touching the
// local collection.
func (m *Manager) Fetch(ctx context.Context, id string) (*api.Note, error) {
	return m.client.GetNote(ctx, m.tokens.Token(), id)
}

// Select marks a note as active. It reports whether the id was found
// in the local collection.
func (m *Manager) Select(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notes {
		if m.notes[i].ID == id {
			m.activeID = id
			return true
		}
	}
	return false
}

// Active returns the currently selected note, if any
func (m *Manager) Active() (api.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeID == "" {
		return api.Note{}, false
	}
	for i := range m.notes {
		if m.notes[i].ID == m.activeID {
			return m.notes[i], true
		}
	}
	return api.Note{}, false
}

// All returns a copy of the collection in its current order
func (m *Manager) All() []api.Note {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]api.Note, len(m.notes))
	copy(out, m.notes)
	return out
}
