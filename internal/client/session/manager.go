// Package session holds client-side authentication state as an
// explicit state machine with a durable backing store, replacing any
// ambient global: the manager is constructed in main with an explicit
// restore-at-startup / clear-on-logout lifecycle and passed down.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	clientapi "github.com/akarpov/marknote/internal/client/api"
	"github.com/akarpov/marknote/internal/client/storage"
	"github.com/akarpov/marknote/internal/validation"
	"github.com/akarpov/marknote/pkg/api"
)

// State is the authentication state of the client
type State int

const (
	// StateUnauthenticated means no session exists
	StateUnauthenticated State = iota
	// StateLoading means a login or register call is in flight
	StateLoading
	// StateAuthenticated means a valid session is held
	StateAuthenticated
	// StateError means the last auth attempt failed; the manager
	// stays usable for a retry
	StateError
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Authenticator is the server API surface the manager needs
type Authenticator interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
}

// Manager is the client session state machine
type Manager struct {
	mu      sync.Mutex
	client  Authenticator
	store   storage.SessionStorage
	logger  *slog.Logger
	state   State
	session *storage.SessionData
	lastErr string
}

// NewManager creates a session manager in the unauthenticated state
func NewManager(client Authenticator, store storage.SessionStorage, logger *slog.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		logger: logger,
		state:  StateUnauthenticated,
	}
}

// Restore loads a previously persisted session. An absent or
// malformed session resolves to unauthenticated, not an error.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.store.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			m.logger.Warn("failed to restore session", "error", err)
		}
		m.state = StateUnauthenticated
		m.session = nil
		return nil
	}

	if session.Token == "" {
		m.state = StateUnauthenticated
		m.session = nil
		return nil
	}

	m.state = StateAuthenticated
	m.session = session
	return nil
}

// Register creates a new account and enters the authenticated state.
// Validation failures and server rejections land in the error state
// with the server's message preserved; a retry is always possible.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return m.fail(err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return m.fail(err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return m.fail(err)
	}

	m.setState(StateLoading)

	resp, err := m.client.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return m.fail(err)
	}

	return m.establish(ctx, resp)
}

// Login authenticates and enters the authenticated state
func (m *Manager) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return m.fail(fmt.Errorf("username and password are required"))
	}

	m.setState(StateLoading)

	resp, err := m.client.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return m.fail(err)
	}

	return m.establish(ctx, resp)
}

// Logout clears the persisted session unconditionally and returns to
// the unauthenticated state. Tokens are stateless, so there is
// nothing to tell the server.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.store.DeleteSession(ctx)

	m.state = StateUnauthenticated
	m.session = nil
	m.lastErr = ""

	if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// State returns the current state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Token returns the bearer token of the current session, or ""
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return ""
	}
	return m.session.Token
}

// User returns the authenticated user, if any
func (m *Manager) User() (api.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return api.User{}, false
	}
	return m.session.User, true
}

// Err returns the message of the last failed auth attempt, or ""
func (m *Manager) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// establish persists the session and enters the authenticated state.
// Token and user are persisted together (and later cleared together).
func (m *Manager) establish(ctx context.Context, resp *api.AuthResponse) error {
	session := &storage.SessionData{
		Token: resp.Token,
		User:  resp.User,
	}

	if err := m.store.SaveSession(ctx, session); err != nil {
		// The in-memory session is still valid; it just won't
		// survive a restart.
		m.logger.Warn("failed to persist session", "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateAuthenticated
	m.session = session
	m.lastErr = ""
	return nil
}

// fail records the error message and enters the error state
func (m *Manager) fail(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateError
	m.session = nil

	// Surface the server's message verbatim when we have it.
	var apiErr *clientapi.Error
	if errors.As(err, &apiErr) {
		m.lastErr = apiErr.Message
	} else {
		m.lastErr = err.Error()
	}

	return err
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}
