// Package editor implements the note editing session with debounced
// auto-save: every edit resets a delay timer, and the note is written
// to the server only after the user pauses.
package editor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/akarpov/marknote/internal/client/sched"
	"github.com/akarpov/marknote/pkg/api"
)

// DefaultDelay is how long after the last edit an auto-save fires
const DefaultDelay = 2 * time.Second

// Saver writes editor state to the server
type Saver interface {
	Update(ctx context.Context, id, title, content string) (*api.Note, error)
	Delete(ctx context.Context, id string) error
}

// Session is a single-note editing session. Title and content edits
// mark it dirty and arm the auto-save timer; any further edit before
// the delay elapses resets the timer, so a save fires only after a
// pause of at least the full delay.
type Session struct {
	mu      sync.Mutex
	saver   Saver
	sched   *sched.Scheduler
	logger  *slog.Logger
	delay   time.Duration
	noteID  string
	title   string
	content string
	dirty   bool
	pending *sched.Handle
}

// NewSession creates an editor session with the default auto-save delay
func NewSession(saver Saver, scheduler *sched.Scheduler, logger *slog.Logger) *Session {
	return &Session{
		saver:  saver,
		sched:  scheduler,
		logger: logger,
		delay:  DefaultDelay,
	}
}

// SetDelay overrides the auto-save delay
func (s *Session) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Open loads a note into the editor. Any pending auto-save for the
// previous note is cancelled and its unsaved edits are discarded.
func (s *Session) Open(note api.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending.Cancel()
	s.pending = nil
	s.noteID = note.ID
	s.title = note.Title
	s.content = note.Content
	s.dirty = false
}

// SetTitle updates the title buffer and re-arms the auto-save timer
func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
	s.markDirty()
}

// SetContent updates the content buffer and re-arms the auto-save timer
func (s *Session) SetContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
	s.markDirty()
}

// markDirty arms the debounce. Caller must hold s.mu.
func (s *Session) markDirty() {
	s.dirty = true
	s.pending.Cancel()
	s.pending = s.sched.Schedule(s.delay, s.autoSave)
}

// autoSave is the timer callback. A save failure is logged and the
// session stays dirty, so the next edit schedules another attempt.
func (s *Session) autoSave() {
	s.mu.Lock()
	if !s.dirty || s.noteID == "" {
		s.mu.Unlock()
		return
	}
	id, title, content := s.noteID, s.title, s.content
	s.dirty = false
	s.pending = nil
	s.mu.Unlock()

	if _, err := s.saver.Update(context.Background(), id, title, content); err != nil {
		s.logger.Warn("auto-save failed", "note_id", id, "error", err)
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
	}
}

// Flush saves immediately if the session is dirty, cancelling any
// pending auto-save.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	if !s.dirty || s.noteID == "" {
		s.mu.Unlock()
		return nil
	}
	s.pending.Cancel()
	s.pending = nil
	id, title, content := s.noteID, s.title, s.content
	s.mu.Unlock()

	if _, err := s.saver.Update(ctx, id, title, content); err != nil {
		return err
	}

	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
	return nil
}

// Discard drops unsaved edits and cancels any pending auto-save
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Cancel()
	s.pending = nil
	s.dirty = false
}

// Delete removes the open note on the server, bypassing the debounce.
// The session is emptied on success.
func (s *Session) Delete(ctx context.Context) error {
	s.mu.Lock()
	id := s.noteID
	s.pending.Cancel()
	s.pending = nil
	s.mu.Unlock()

	if id == "" {
		return nil
	}

	if err := s.saver.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.noteID = ""
	s.title = ""
	s.content = ""
	s.dirty = false
	s.mu.Unlock()
	return nil
}

// NoteID returns the id of the open note, or ""
func (s *Session) NoteID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.noteID
}

// Title returns the current title buffer
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// Content returns the current content buffer
func (s *Session) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// Dirty reports whether there are unsaved edits
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}
