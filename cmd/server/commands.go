package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophsave/internal/config"
	"github.com/iudanet/gophsave/internal/logging"
	"github.com/iudanet/gophsave/internal/server/handlers"
	"github.com/iudanet/gophsave/internal/server/storage/sqlite"
)

type versionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type serverOptions struct {
	stderr     io.Writer
	configPath string
	version    versionInfo
}

// flagBindings связывает флаги с ключами конфигурации
var flagBindings = map[string]string{
	"db":        config.KeyDB,
	"listen":    config.KeyServerListen,
	"origin":    config.KeyOrigin,
	"log-level": config.KeyLogLevel,
	"log-file":  config.KeyLogFile,
}

func newRootCommand(version versionInfo, stderr io.Writer) *cobra.Command {
	opts := &serverOptions{stderr: stderr, version: version}

	root := &cobra.Command{
		Use:   "gophsave-server",
		Short: "Cloud-save host for the calculator game widget",
		Long: `gophsave-server stores per-account save slots and answers widget
load/save requests over a WebSocket.

The JWT secret is read from GOPHSAVE_JWT_SECRET or the config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file")
	flags.String("db", "gophsave-server.db", "Path to SQLite database")
	flags.String("listen", ":8080", "Address to listen on")
	flags.String("origin", "", "Browser origin allowed to open the WebSocket")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to a rotating file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the cloud-save host",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withStorage(cmd, opts.serve)
			},
		},
		&cobra.Command{
			Use:   "token <account>",
			Short: "Print an access token for the account, creating it if needed",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withStorage(cmd, func(ctx context.Context, env *environment) error {
					return issueToken(ctx, env, args[0], cmd.OutOrStdout())
				})
			},
		},
		&cobra.Command{
			Use:   "slots <account>",
			Short: "List the save slots stored for the account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withStorage(cmd, func(ctx context.Context, env *environment) error {
					return listSlots(ctx, env, args[0], cmd.OutOrStdout())
				})
			},
		},
		newVersionCommand(version),
	)

	return root
}

// environment всё, что открывается для одной команды
type environment struct {
	cfg    *config.Server
	logger *slog.Logger
	store  *sqlite.Storage
}

func (e *environment) jwtConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:         []byte(e.cfg.JWTSecret),
		AccessTokenTTL: e.cfg.TokenTTL,
	}
}

func (o *serverOptions) withStorage(cmd *cobra.Command, fn func(ctx context.Context, env *environment) error) error {
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

	store, err := sqlite.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	return fn(ctx, &environment{cfg: cfg, logger: logger, store: store})
}

func (o *serverOptions) loadConfig(cmd *cobra.Command) (*config.Server, error) {
	v, err := config.New(o.configPath)
	if err != nil {
		return nil, err
	}
	config.SetServerDefaults(v)

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

	return config.LoadServer(v)
}

func issueToken(ctx context.Context, env *environment, name string, out io.Writer) error {
	issued, err := handlers.IssueAccountToken(ctx, env.store, env.jwtConfig(), name)
	if err != nil {
		return err
	}

	if issued.Created {
		env.logger.Info("Account created", "account_id", issued.Account.ID, "account_name", issued.Account.Name)
	}
	_, err = fmt.Fprintln(out, issued.Token)
	return err
}

func listSlots(ctx context.Context, env *environment, name string, out io.Writer) error {
	account, err := env.store.GetAccountByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to find account %q: %w", name, err)
	}

	slots, err := env.store.ListSlots(ctx, account.ID)
	if err != nil {
		return err
	}

	if len(slots) == 0 {
		_, err = fmt.Fprintln(out, "No saves stored.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SLOT\tLABEL\tFIELDS\tUPDATED")
	for _, slot := range slots {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n",
			slot.Slot, slot.Label, len(slot.Data.Fields()), slot.UpdatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func newVersionCommand(info versionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "GophSave Server\n")
			_, _ = fmt.Fprintf(out, "Version:    %s\n", info.Version)
			_, _ = fmt.Fprintf(out, "Build Date: %s\n", info.BuildDate)
			_, _ = fmt.Fprintf(out, "Git Commit: %s\n", info.GitCommit)
		},
	}
}
