package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 6 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering...")

	if err := c.sessions.Register(ctx, username, email, password); err != nil {
		return fmt.Errorf("registration failed: %s", c.sessions.Err())
	}

	user, _ := c.sessions.User()
	c.io.Println()
	c.io.Println("Registration successful!")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Println("You are now logged in.")

	return nil
}
