// Package cli implements the marknote client commands
package cli

import (
	"context"
	"fmt"

	"github.com/akarpov/marknote/internal/client/editor"
	"github.com/akarpov/marknote/internal/client/iocli"
	"github.com/akarpov/marknote/internal/client/notes"
	"github.com/akarpov/marknote/internal/client/preview"
	"github.com/akarpov/marknote/internal/client/session"
)

type Cli struct {
	sessions *session.Manager
	notes    *notes.Manager
	editor   *editor.Session
	preview  *preview.Renderer
	io       iocli.IO
}

func New(sessions *session.Manager, notesMgr *notes.Manager, editorSession *editor.Session, renderer *preview.Renderer, io iocli.IO) *Cli {
	return &Cli{
		sessions: sessions,
		notes:    notesMgr,
		editor:   editorSession,
		preview:  renderer,
		io:       io,
	}
}

// requireAuth restores the persisted session and fails if none exists
func (c *Cli) requireAuth(ctx context.Context) error {
	if err := c.sessions.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if c.sessions.State() != session.StateAuthenticated {
		return fmt.Errorf("not authenticated. Please run 'marknote login' first")
	}
	return nil
}
