package cli

import (
	"context"
	"fmt"
)

// RunView renders a note's markdown as HTML
func (c *Cli) RunView(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("missing note id. Usage: marknote view <id>")
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	note, err := c.notes.Fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	html, err := c.preview.Render(note.Content)
	if err != nil {
		return fmt.Errorf("failed to render note: %w", err)
	}

	c.io.Printf("# %s\n\n", note.Title)
	c.io.Println(html)

	return nil
}
