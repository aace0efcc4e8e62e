package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()

	if err := c.sessions.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login failed: %s", c.sessions.Err())
	}

	if err := c.notes.Refresh(ctx); err != nil {
		// Login itself succeeded; the list can be fetched later.
		c.io.Printf("Warning: failed to fetch notes: %v\n", err)
	}

	user, _ := c.sessions.User()
	c.io.Printf("Logged in as %s\n", user.Username)

	return nil
}
