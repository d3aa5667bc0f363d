package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/gophsave/internal/client/widget"
)

// teardownTimeout ограничивает финальное сохранение после сигнала
const teardownTimeout = 5 * time.Second

const sessionPrompt = "Command (help for the list):"

// runSession loads the save, runs commands until quit or cancellation and
// saves on teardown.
func (c *Cli) runSession(ctx context.Context) error {
	if err := c.runLoad(ctx); err != nil {
		return err
	}

	c.io.Println("Game is running")
	loopErr := c.sessionLoop(ctx)

	// Финальное сохранение выполняется и после отмены ctx
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), teardownTimeout)
	defer cancel()

	return errors.Join(loopErr, c.runSave(saveCtx))
}

func (c *Cli) sessionLoop(ctx context.Context) error {
	for {
		line, ok, err := c.io.Prompt(ctx, sessionPrompt, "")
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("Session interrupted")
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}
		if !ok {
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var cmdErr error
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			c.io.Printf("%s", helpText)
		case "show":
			cmdErr = c.runShow(ctx)
		case "set":
			cmdErr = c.runSet(ctx, fields[1:])
		case "save":
			cmdErr = c.runSave(ctx)
		case "import":
			cmdErr = c.runImport(ctx)
		case "status":
			cmdErr = c.runStatus(ctx)
		default:
			c.io.Printf("Unknown command: %s\n", fields[0])
		}

		if cmdErr != nil {
			c.io.Printf("Error: %v\n", cmdErr)
		}
	}
}

func (c *Cli) runShow(ctx context.Context) error {
	exprs, err := c.calc.Expressions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get expressions: %w", err)
	}

	for _, e := range exprs {
		c.io.Printf("%-6s %s\n", e.ID, e.Latex)
	}
	return nil
}

func (c *Cli) runSet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: set <id> <latex>")
	}

	expr := widget.Expression{ID: args[0], Latex: strings.Join(args[1:], " ")}
	if err := c.calc.SetExpression(ctx, expr); err != nil {
		return fmt.Errorf("failed to set expression: %w", err)
	}
	return nil
}
