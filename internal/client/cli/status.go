package cli

import (
	"context"
	"fmt"
	"text/template"
)

var statusTmpl = template.Must(template.New("status").Parse(statusTemplate))

func (c *Cli) runStatus(ctx context.Context) error {
	status, err := c.syncService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if err := statusTmpl.Execute(c.io, status); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}
	return nil
}
