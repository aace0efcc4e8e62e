package storage

import (
	"context"

	"github.com/akarpov/marknote/pkg/api"
)

// SessionData is the persisted client session: the bearer token and
// the user it belongs to. The two are always saved and cleared
// together, never independently.
type SessionData struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// SessionStorage defines the durable client-side session store,
// keeping the session across client restarts.
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if none exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout).
	// Deleting an absent session is not an error.
	DeleteSession(ctx context.Context) error
}
