package editor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/marknote/internal/client/sched"
	"github.com/akarpov/marknote/pkg/api"
)

// savedCall records one Update call
type savedCall struct {
	id      string
	title   string
	content string
}

// mockSaver records saves and deletes
type mockSaver struct {
	mu        sync.Mutex
	saves     []savedCall
	deletes   []string
	updateErr error
	deleteErr error
}

func (m *mockSaver) Update(ctx context.Context, id, title, content string) (*api.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.saves = append(m.saves, savedCall{id: id, title: title, content: content})
	return &api.Note{ID: id, Title: title, Content: content}, nil
}

func (m *mockSaver) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletes = append(m.deletes, id)
	return nil
}

func (m *mockSaver) savedCalls() []savedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]savedCall(nil), m.saves...)
}

func newTestSession(t *testing.T) (*Session, *mockSaver, *sched.VirtualClock) {
	t.Helper()

	saver := &mockSaver{}
	clock := sched.NewVirtualClock(time.Unix(0, 0))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewSession(saver, sched.New(clock), logger)
	return s, saver, clock
}

func openedNote() api.Note {
	return api.Note{ID: "n1", Title: "Draft", Content: "first line"}
}

func TestAutoSave_FiresAfterPause(t *testing.T) {
	s, saver, clock := newTestSession(t)
	s.Open(openedNote())

	s.SetContent("first line\nsecond line")
	assert.True(t, s.Dirty())

	// Not yet: the pause is shorter than the delay.
	clock.Advance(time.Second)
	assert.Empty(t, saver.savedCalls())

	clock.Advance(time.Second)

	calls := saver.savedCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "n1", calls[0].id)
	assert.Equal(t, "first line\nsecond line", calls[0].content)
	assert.False(t, s.Dirty())
}

func TestAutoSave_DebouncesRapidEdits(t *testing.T) {
	s, saver, clock := newTestSession(t)
	s.Open(openedNote())

	// Three edits, each within the delay of the previous one.
	s.SetContent("a")
	clock.Advance(time.Second)
	s.SetContent("ab")
	clock.Advance(time.Second)
	s.SetContent("abc")
	clock.Advance(time.Second)

	assert.Empty(t, saver.savedCalls(), "no save while edits keep coming")

	clock.Advance(time.Second)

	// Exactly one save, carrying the final buffers.
	calls := saver.savedCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "abc", calls[0].content)
}

func TestAutoSave_TitleEditsDebounceToo(t *testing.T) {
	s, saver, clock := newTestSession(t)
	s.Open(openedNote())

	s.SetTitle("Renamed")
	clock.Advance(2 * time.Second)

	calls := saver.savedCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Renamed", calls[0].title)
	assert.Equal(t, "first line", calls[0].content)
}

func TestOpen_DiscardsPendingEdits(t *testing.T) {
	s, saver, clock := newTestSession(t)
	s.Open(openedNote())

	s.SetContent("unsaved edit")
	clock.Advance(time.Second)

	// Switching notes before the save fires drops the pending edit.
	s.Open(api.Note{ID: "n2", Title: "Other", Content: "other content"})

	clock.Advance(time.Minute)
	assert.Empty(t, saver.savedCalls())
	assert.Equal(t, "n2", s.NoteID())
	assert.Equal(t, "other content", s.Content())
	assert.False(t, s.Dirty())
}

func TestFlush_SavesImmediately(t *testing.T) {
	s, saver, clock := newTestSession(t)
	s.Open(openedNote())

	s.SetContent("new content")
	require.NoError(t, s.Flush(context.Background()))

	calls := saver.savedCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "new content", calls[0].content)
	assert.False(t, s.Dirty())

	// The pending auto-save was cancelled; no duplicate write.
	clock.Advance(time.Minute)
	assert.Len(t, saver.savedCalls(), 1)
}

func TestFlush_CleanSessionIsNoop(t *testing.T) {
	s, saver, _ := newTestSession(t)
	s.Open(openedNote())

	require.NoError(t, s.Flush(context.Background()))
	assert.Empty(t, saver.savedCalls())
}

func TestFlush_Error(t *testing.T) {
	s, saver, _ := newTestSession(t)
	s.Open(openedNote())
	saver.updateErr = errors.New("server error")

	s.SetContent("new content")
	require.Error(t, s.Flush(context.Background()))

	// The edit is still there for a retry.
	assert.True(t, s.Dirty())
}

func TestAutoSave_ErrorKeepsDirty(t *testing.T) {
	s, saver, clock := newTestSession(t)
	s.Open(openedNote())
	saver.updateErr = errors.New("server error")

	s.SetContent("new content")
	clock.Advance(2 * time.Second)

	assert.True(t, s.Dirty())

	// Once the server recovers, a flush writes the kept edit.
	saver.updateErr = nil
	require.NoError(t, s.Flush(context.Background()))
	require.Len(t, saver.savedCalls(), 1)
	assert.Equal(t, "new content", saver.savedCalls()[0].content)
}

func TestDelete_BypassesDebounce(t *testing.T) {
	s, saver, clock := newTestSession(t)
	s.Open(openedNote())

	s.SetContent("doomed edit")
	require.NoError(t, s.Delete(context.Background()))

	assert.Equal(t, []string{"n1"}, saver.deletes)
	assert.Empty(t, s.NoteID())

	// The pending auto-save for the deleted note never fires.
	clock.Advance(time.Minute)
	assert.Empty(t, saver.savedCalls())
}

func TestDiscard(t *testing.T) {
	s, saver, clock := newTestSession(t)
	s.Open(openedNote())

	s.SetContent("unwanted")
	s.Discard()

	assert.False(t, s.Dirty())
	clock.Advance(time.Minute)
	assert.Empty(t, saver.savedCalls())
}

func TestSetDelay(t *testing.T) {
	s, saver, clock := newTestSession(t)
	s.SetDelay(5 * time.Second)
	s.Open(openedNote())

	s.SetContent("slow save")
	clock.Advance(2 * time.Second)
	assert.Empty(t, saver.savedCalls())

	clock.Advance(3 * time.Second)
	assert.Len(t, saver.savedCalls(), 1)
}
