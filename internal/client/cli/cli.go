package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/gophsave/internal/client/iocli"
	"github.com/iudanet/gophsave/internal/client/sync"
	"github.com/iudanet/gophsave/internal/client/widget"
	"github.com/iudanet/gophsave/internal/models"
)

// autoRunLatex включает игровой цикл виджета
const autoRunLatex = `r_{unning}=1`

// Cli runs the user-facing commands on top of the sync service
type Cli struct {
	io          iocli.IO
	syncService sync.Service
	calc        widget.Calculator
	logger      *slog.Logger
	autorunID   string
}

// New creates a runner. An empty autorunID disables the auto-run flag.
func New(io iocli.IO, syncService sync.Service, calc widget.Calculator, autorunID string, logger *slog.Logger) *Cli {
	return &Cli{
		io:          io,
		syncService: syncService,
		calc:        calc,
		logger:      logger,
		autorunID:   autorunID,
	}
}

func (c *Cli) runLoad(ctx context.Context) error {
	c.io.Println("=== Load ===")

	result, err := c.syncService.Load(ctx)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	switch {
	case result.Source != models.SourceNone:
		c.io.Printf("✓ Loaded %s save: %s\n", result.Source, result.Blob)
	case result.Reset:
		c.io.Println("Save data was invalid, starting a new game")
	default:
		c.io.Println("No save found, starting a new game")
	}

	return c.setAutoRun(ctx)
}

func (c *Cli) setAutoRun(ctx context.Context) error {
	if c.autorunID == "" {
		return nil
	}

	expr := widget.Expression{ID: c.autorunID, Latex: autoRunLatex}
	if err := c.calc.SetExpression(ctx, expr); err != nil {
		return fmt.Errorf("failed to set auto-run flag: %w", err)
	}
	return nil
}
