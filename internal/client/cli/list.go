package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) RunList(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if err := c.notes.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	all := c.notes.All()
	if len(all) == 0 {
		c.io.Println("No notes yet.")
		c.io.Println()
		c.io.Println("Use 'marknote create' to write your first note.")
		return nil
	}

	c.io.Printf("Found %d note(s):\n", len(all))
	c.io.Println()

	for i, note := range all {
		c.io.Printf("%d. %s\n", i+1, note.Title)
		c.io.Printf("   ID:      %s\n", note.ID)
		c.io.Printf("   Updated: %s\n", note.UpdatedAt.Local().Format(time.RFC822))
		c.io.Println()
	}

	return nil
}
