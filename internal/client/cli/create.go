package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) RunCreate(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== New Note ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	c.io.Println("Content (finish with a single '.' on its own line):")

	var lines []string
	for {
		line, err := c.io.ReadInput("")
		if err != nil {
			break
		}
		if line == "." {
			break
		}
		lines = append(lines, line)
	}

	note, err := c.notes.Create(ctx, title, strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	c.io.Println()
	c.io.Printf("Note created: %s\n", note.ID)

	return nil
}
