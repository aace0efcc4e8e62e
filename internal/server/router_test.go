package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/marknote/internal/config"
	"github.com/akarpov/marknote/internal/server/storage/sqlite"
	"github.com/akarpov/marknote/pkg/api"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	cfg := &config.Config{
		JWTSecret:      []byte("test-secret-key"),
		TokenTTL:       time.Hour,
		AuthRateLimit:  100,
		AuthRateWindow: time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(NewRouter(logger, cfg, store, "test"))
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

func registerUser(t *testing.T, ts *httptest.Server, username string) api.AuthResponse {
	t.Helper()

	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", api.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var auth api.AuthResponse
	require.NoError(t, json.Unmarshal(body, &auth))
	return auth
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ok")
}

// TestNoteLifecycle walks the whole flow: register, login, create,
// list, update, verify isolation between users, delete.
func TestNoteLifecycle(t *testing.T) {
	ts := newTestServer(t)

	alice := registerUser(t, ts, "alice")
	bob := registerUser(t, ts, "bob")

	// Login works with the registered password.
	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", api.LoginRequest{
		Username: "alice", Password: "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	// Create a note as alice.
	resp, body = doJSON(t, ts, http.MethodPost, "/api/v1/notes", alice.Token, api.NoteRequest{
		Title: "Shopping", Content: "- milk",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created api.NoteResponse
	require.NoError(t, json.Unmarshal(body, &created))
	noteID := created.Note.ID
	require.NotEmpty(t, noteID)

	// Alice sees it in her list; bob's list is empty.
	resp, body = doJSON(t, ts, http.MethodGet, "/api/v1/notes", alice.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var aliceList api.NotesResponse
	require.NoError(t, json.Unmarshal(body, &aliceList))
	require.Len(t, aliceList.Notes, 1)

	resp, body = doJSON(t, ts, http.MethodGet, "/api/v1/notes", bob.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bobList api.NotesResponse
	require.NoError(t, json.Unmarshal(body, &bobList))
	assert.Empty(t, bobList.Notes)

	// Bob cannot read, update or delete alice's note.
	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/notes/"+noteID, bob.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodPut, "/api/v1/notes/"+noteID, bob.Token, api.NoteRequest{
		Title: "Hijack", Content: "attempt",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodDelete, "/api/v1/notes/"+noteID, bob.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Alice updates and deletes it.
	resp, body = doJSON(t, ts, http.MethodPut, "/api/v1/notes/"+noteID, alice.Token, api.NoteRequest{
		Title: "Shopping v2", Content: "- milk\n- bread",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, _ = doJSON(t, ts, http.MethodDelete, "/api/v1/notes/"+noteID, alice.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/notes/"+noteID, alice.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/notes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errResp api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Access token required", errResp.Error)

	resp, body = doJSON(t, ts, http.MethodGet, "/api/v1/notes", "bogus-token", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "Invalid or expired token", errResp.Error)
}

func TestRegister_Conflicts(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice")

	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", api.RegisterRequest{
		Username: "alice", Email: "new@example.com", Password: "secret123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "username already taken")

	resp, body = doJSON(t, ts, http.MethodPost, "/api/v1/auth/register", "", api.RegisterRequest{
		Username: "alice2", Email: "alice@example.com", Password: "secret123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "email already registered")
}
