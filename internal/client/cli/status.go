package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	if err := c.sessions.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	user, ok := c.sessions.User()
	if !ok {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'marknote login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Email:    %s\n", user.Email)

	return nil
}
