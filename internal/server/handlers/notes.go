package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov/marknote/internal/models"
	"github.com/akarpov/marknote/internal/server/storage"
	"github.com/akarpov/marknote/internal/validation"
	"github.com/akarpov/marknote/pkg/api"
)

// noteNotFound is returned whether the note does not exist or belongs
// to another user; the two cases are deliberately indistinguishable.
const noteNotFound = "Note not found"

// NotesHandler handles note CRUD requests.
// Every operation is scoped to the identity the auth middleware put
// into the request context.
type NotesHandler struct {
	logger      *slog.Logger
	noteStorage storage.NoteStorage
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(logger *slog.Logger, noteStorage storage.NoteStorage) *NotesHandler {
	return &NotesHandler{
		logger:      logger,
		noteStorage: noteStorage,
	}
}

// List handles GET /api/v1/notes
// Returns all notes owned by the caller, most recently updated first.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	notes, err := h.noteStorage.ListNotes(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notes", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "Server error fetching notes", http.StatusInternalServerError)
		return
	}

	resp := api.NotesResponse{Notes: make([]api.Note, 0, len(notes))}
	for _, note := range notes {
		resp.Notes = append(resp.Notes, toAPINote(note))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get handles GET /api/v1/notes/{id}
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	note, err := h.noteStorage.GetNote(ctx, r.PathValue("id"), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, noteNotFound, http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get note", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "Server error fetching note", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.NoteResponse{Note: toAPINote(note)}, http.StatusOK)
}

// Create handles POST /api/v1/notes
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateNote(req.Title, req.Content); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	note := &models.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.noteStorage.CreateNote(ctx, note); err != nil {
		h.logger.ErrorContext(ctx, "failed to create note", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "Server error creating note", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note created",
		slog.String("note_id", note.ID),
		slog.String("user_id", userID))

	sendJSON(h.logger, w, api.NoteResponse{
		Message: "Note created successfully",
		Note:    toAPINote(note),
	}, http.StatusCreated)
}

// Update handles PUT /api/v1/notes/{id}
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateNote(req.Title, req.Content); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.noteStorage.UpdateNote(ctx, r.PathValue("id"), userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, noteNotFound, http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update note", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "Server error updating note", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.NoteResponse{
		Message: "Note updated successfully",
		Note:    toAPINote(note),
	}, http.StatusOK)
}

// Delete handles DELETE /api/v1/notes/{id}
// Deleting a note that is already gone yields 404, not success.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.noteStorage.DeleteNote(ctx, r.PathValue("id"), userID); err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, noteNotFound, http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete note", slog.Any("error", err), slog.String("user_id", userID))
		sendError(h.logger, w, "Server error deleting note", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note deleted",
		slog.String("note_id", r.PathValue("id")),
		slog.String("user_id", userID))

	sendJSON(h.logger, w, api.MessageResponse{Message: "Note deleted successfully"}, http.StatusOK)
}

// toAPINote converts a storage note to its wire form
func toAPINote(n *models.Note) api.Note {
	return api.Note{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
