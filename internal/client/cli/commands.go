package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophsave/internal/config"
	"github.com/iudanet/gophsave/internal/logging"
)

// Builder wires a runner for one command invocation.
// The returned cleanup releases everything the builder opened.
type Builder func(ctx context.Context, cfg *config.Client, logger *slog.Logger) (*Cli, func(), error)

// VersionInfo is printed by the version command
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type rootOptions struct {
	build      Builder
	stderr     io.Writer
	configPath string
}

// flagBindings связывает флаги с ключами конфигурации
var flagBindings = map[string]string{
	"db":        config.KeyDB,
	"state":     config.KeyState,
	"host":      config.KeyHostURL,
	"token":     config.KeyHostToken,
	"origin":    config.KeyOrigin,
	"slot":      config.KeySlot,
	"platform":  config.KeyPlatform,
	"timeout":   config.KeyTimeout,
	"log-level": config.KeyLogLevel,
	"log-file":  config.KeyLogFile,
}

// NewRootCommand builds the gophsave command tree
func NewRootCommand(build Builder, version VersionInfo, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{build: build, stderr: stderr}

	root := &cobra.Command{
		Use:   "gophsave",
		Short: "Save synchronization for the calculator game widget",
		Long: `GophSave keeps the game save in sync between the local cache,
the cloud slot of the platform and the running widget.

Configuration is read from flags, GOPHSAVE_* environment variables and an
optional config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file")
	flags.String("db", "gophsave-client.db", "Path to local database")
	flags.String("state", "state.json", "Initial state document (path or URL)")
	flags.String("host", "", "Cloud-save host WebSocket URL")
	flags.String("token", "", "Account token for the cloud-save host")
	flags.String("origin", "https://galaxy.click", "Trusted origin of the cloud-save host")
	flags.Int("slot", 0, "Cloud-save slot")
	flags.Bool("platform", false, "Assume the widget runs on the platform")
	flags.Duration("timeout", 0, "Cloud load timeout (default 1s)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to a rotating file")

	root.AddCommand(
		opts.command("load", "Load and reconcile the save", (*Cli).runLoad),
		opts.command("save", "Load the save, then flush it to local storage and the cloud", func(c *Cli, ctx context.Context) error {
			if err := c.runLoad(ctx); err != nil {
				return err
			}
			return c.runSave(ctx)
		}),
		opts.command("import", "Load the save and import an edited one", func(c *Cli, ctx context.Context) error {
			if err := c.runLoad(ctx); err != nil {
				return err
			}
			if err := c.runImport(ctx); err != nil {
				return err
			}
			return c.runSave(ctx)
		}),
		opts.command("status", "Show local save status", (*Cli).runStatus),
		opts.command("run", "Run an interactive game session", (*Cli).runSession),
		newVersionCommand(version),
	)

	return root
}

// command создаёт подкоманду, которая собирает окружение и вызывает fn
func (o *rootOptions) command(use, short string, fn func(c *Cli, ctx context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, fn)
		},
	}
}

func (o *rootOptions) run(cmd *cobra.Command, fn func(c *Cli, ctx context.Context) error) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log, o.stderr)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, cleanup, err := o.build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(c, ctx)
}

func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Client, error) {
	v, err := config.New(o.configPath)
	if err != nil {
		return nil, err
	}
	config.SetClientDefaults(v)

	flags := cmd.Root().PersistentFlags()
	for name, key := range flagBindings {
		flag := flags.Lookup(name)
		// Флаг переопределяет конфиг только если задан явно
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return config.LoadClient(v)
}

func newVersionCommand(info VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "GophSave Client\n")
			_, _ = fmt.Fprintf(out, "Version:    %s\n", info.Version)
			_, _ = fmt.Fprintf(out, "Build Date: %s\n", info.BuildDate)
			_, _ = fmt.Fprintf(out, "Git Commit: %s\n", info.GitCommit)
		},
	}
}
