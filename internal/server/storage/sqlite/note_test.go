package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/marknote/internal/models"
	"github.com/akarpov/marknote/internal/server/storage"
)

// seedUser inserts a user so note foreign keys hold
func seedUser(t *testing.T, s *Storage, username string) string {
	t.Helper()

	user := newTestUser(username, username+"@example.com")
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user.ID
}

func newTestNote(userID, title string, updatedAt time.Time) *models.Note {
	return &models.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   "content of " + title,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestCreateAndGetNote(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	userID := seedUser(t, s, "alice")

	note := newTestNote(userID, "First", time.Now().UTC())
	require.NoError(t, s.CreateNote(ctx, note))

	got, err := s.GetNote(ctx, note.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Content, got.Content)
	assert.Equal(t, userID, got.UserID)
}

func TestGetNote_OwnerScoped(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	aliceID := seedUser(t, s, "alice")
	bobID := seedUser(t, s, "bob")

	note := newTestNote(aliceID, "Private", time.Now().UTC())
	require.NoError(t, s.CreateNote(ctx, note))

	// Bob cannot see Alice's note even with a valid id.
	_, err := s.GetNote(ctx, note.ID, bobID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	_, err = s.GetNote(ctx, uuid.New().String(), aliceID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestListNotes_OrderAndScope(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	aliceID := seedUser(t, s, "alice")
	bobID := seedUser(t, s, "bob")

	now := time.Now().UTC()
	require.NoError(t, s.CreateNote(ctx, newTestNote(aliceID, "Oldest", now.Add(-2*time.Hour))))
	require.NoError(t, s.CreateNote(ctx, newTestNote(aliceID, "Newest", now)))
	require.NoError(t, s.CreateNote(ctx, newTestNote(aliceID, "Middle", now.Add(-time.Hour))))
	require.NoError(t, s.CreateNote(ctx, newTestNote(bobID, "Bob's", now)))

	notes, err := s.ListNotes(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	assert.Equal(t, "Newest", notes[0].Title)
	assert.Equal(t, "Middle", notes[1].Title)
	assert.Equal(t, "Oldest", notes[2].Title)
}

func TestListNotes_Empty(t *testing.T) {
	s := newTestStorage(t)
	userID := seedUser(t, s, "alice")

	notes, err := s.ListNotes(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestUpdateNote(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	userID := seedUser(t, s, "alice")

	note := newTestNote(userID, "Draft", time.Now().UTC().Add(-time.Hour))
	require.NoError(t, s.CreateNote(ctx, note))

	updated, err := s.UpdateNote(ctx, note.ID, userID, "Final", "new content")
	require.NoError(t, err)

	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "new content", updated.Content)
	assert.True(t, updated.UpdatedAt.After(note.UpdatedAt))
	assert.Equal(t, note.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateNote_OwnerScoped(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	aliceID := seedUser(t, s, "alice")
	bobID := seedUser(t, s, "bob")

	note := newTestNote(aliceID, "Private", time.Now().UTC())
	require.NoError(t, s.CreateNote(ctx, note))

	_, err := s.UpdateNote(ctx, note.ID, bobID, "Hijacked", "nope")
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	got, err := s.GetNote(ctx, note.ID, aliceID)
	require.NoError(t, err)
	assert.Equal(t, "Private", got.Title)
}

func TestDeleteNote(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	userID := seedUser(t, s, "alice")

	note := newTestNote(userID, "Doomed", time.Now().UTC())
	require.NoError(t, s.CreateNote(ctx, note))

	require.NoError(t, s.DeleteNote(ctx, note.ID, userID))

	_, err := s.GetNote(ctx, note.ID, userID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	// Repeat delete reports not found.
	err = s.DeleteNote(ctx, note.ID, userID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestDeleteNote_OwnerScoped(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	aliceID := seedUser(t, s, "alice")
	bobID := seedUser(t, s, "bob")

	note := newTestNote(aliceID, "Private", time.Now().UTC())
	require.NoError(t, s.CreateNote(ctx, note))

	err := s.DeleteNote(ctx, note.ID, bobID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	_, err = s.GetNote(ctx, note.ID, aliceID)
	assert.NoError(t, err)
}
