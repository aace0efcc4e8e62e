package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) RunDelete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("missing note id. Usage: marknote delete <id>")
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	confirm, err := c.io.ReadInput(fmt.Sprintf("Delete note %s? [y/N]: ", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(confirm, "y") && !strings.EqualFold(confirm, "yes") {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	c.io.Println("Note deleted.")
	return nil
}
