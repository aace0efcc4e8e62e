package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akarpov/marknote/pkg/api"
)

// Error is a non-2xx server response. Message carries the server's
// {"error": ...} body verbatim so callers can surface it unchanged.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Client is the HTTP client for the marknote server
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register registers a new user and returns the issued token
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates a user and returns the issued token
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListNotes returns all notes owned by the token's user,
// most recently updated first
func (c *Client) ListNotes(ctx context.Context, token string) ([]api.Note, error) {
	var resp api.NotesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/notes", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

// GetNote returns a single owned note
func (c *Client) GetNote(ctx context.Context, token, id string) (*api.Note, error) {
	var resp api.NoteResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/notes/"+id, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Note, nil
}

// CreateNote creates a new note
func (c *Client) CreateNote(ctx context.Context, token, title, content string) (*api.Note, error) {
	var resp api.NoteResponse
	req := api.NoteRequest{Title: title, Content: content}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/notes", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Note, nil
}

// UpdateNote replaces title and content of an owned note
func (c *Client) UpdateNote(ctx context.Context, token, id, title, content string) (*api.Note, error) {
	var resp api.NoteResponse
	req := api.NoteRequest{Title: title, Content: content}
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/notes/"+id, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Note, nil
}

// DeleteNote removes an owned note
func (c *Client) DeleteNote(ctx context.Context, token, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/notes/"+id, token, nil, nil)
}

// doRequest performs an HTTP request against the server
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: string(respBody)}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
