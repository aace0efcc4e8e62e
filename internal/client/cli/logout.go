package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunLogout(ctx context.Context) error {
	if err := c.sessions.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.notes.Clear()
	c.editor.Discard()

	c.io.Println("Logged out.")
	return nil
}
