package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) RunGet(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("missing note id. Usage: marknote get <id>")
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	note, err := c.notes.Fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	c.io.Printf("# %s\n", note.Title)
	c.io.Printf("Updated: %s\n", note.UpdatedAt.Local().Format(time.RFC822))
	c.io.Println()
	c.io.Println(note.Content)

	return nil
}
