package cli

import (
	"context"
	"fmt"
	"strings"
)

// RunEdit opens an interactive editing loop on a note. Edits are
// auto-saved after a pause; :w forces a save, :q saves and quits,
// :q! quits discarding unsaved edits.
func (c *Cli) RunEdit(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("missing note id. Usage: marknote edit <id>")
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	note, err := c.notes.Fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	c.editor.Open(*note)

	c.io.Printf("Editing %q. Lines are appended to the content.\n", note.Title)
	c.io.Println("Commands: :t <title>  :p (print)  :w (save)  :q (save and quit)  :q! (discard)  :d (delete)")
	c.io.Println()

	for {
		line, err := c.io.ReadInput("> ")
		if err != nil {
			// EOF ends the session like :q
			return c.editor.Flush(ctx)
		}

		switch {
		case line == ":q":
			return c.editor.Flush(ctx)

		case line == ":q!":
			c.editor.Discard()
			return nil

		case line == ":w":
			if err := c.editor.Flush(ctx); err != nil {
				c.io.Printf("Save failed: %v\n", err)
			} else {
				c.io.Println("Saved.")
			}

		case line == ":p":
			c.io.Printf("# %s\n\n%s\n", c.editor.Title(), c.editor.Content())

		case line == ":d":
			if err := c.editor.Delete(ctx); err != nil {
				c.io.Printf("Delete failed: %v\n", err)
				continue
			}
			c.io.Println("Note deleted.")
			return nil

		case strings.HasPrefix(line, ":t "):
			c.editor.SetTitle(strings.TrimPrefix(line, ":t "))

		default:
			content := c.editor.Content()
			if content == "" {
				c.editor.SetContent(line)
			} else {
				c.editor.SetContent(content + "\n" + line)
			}
		}
	}
}
