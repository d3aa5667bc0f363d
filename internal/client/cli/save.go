package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSave(ctx context.Context) error {
	c.io.Println("=== Save ===")

	result, err := c.syncService.Save(ctx)
	if err != nil {
		return fmt.Errorf("save failed: %w", err)
	}

	c.io.Printf("✓ Saved locally: %s\n", result.Blob)

	switch {
	case !result.Remote:
		c.io.Println("Cloud saves are not available (standalone)")
	case result.RemoteErr != nil:
		c.io.Printf("⚠️  Cloud save failed: %v\n", result.RemoteErr)
	default:
		c.io.Println("✓ Sent to the cloud")
	}

	return nil
}

func (c *Cli) runImport(ctx context.Context) error {
	if err := c.syncService.Import(ctx); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	return nil
}
