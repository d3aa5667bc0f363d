package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/iudanet/gophsave/internal/client/bridge"
	"github.com/iudanet/gophsave/internal/client/cli"
	"github.com/iudanet/gophsave/internal/client/iocli"
	"github.com/iudanet/gophsave/internal/client/remote"
	"github.com/iudanet/gophsave/internal/client/statedoc"
	"github.com/iudanet/gophsave/internal/client/storage/boltdb"
	"github.com/iudanet/gophsave/internal/client/sync"
	"github.com/iudanet/gophsave/internal/client/widget"
	"github.com/iudanet/gophsave/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(build, cli.VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}, os.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// build собирает все компоненты клиента для одной команды
func build(ctx context.Context, cfg *config.Client, logger *slog.Logger) (*cli.Cli, func(), error) {
	logger = logger.With("session", uuid.NewString())

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	closers := []func(){
		func() {
			if err := boltStorage.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		},
	}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// Начальное состояние виджета
	state, err := statedoc.NewLoader(logger).Load(ctx, cfg.State)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	calc := widget.NewStore()
	if err := calc.SetState(ctx, state, widget.StateOptions{RemapColors: true}); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to apply initial state: %w", err)
	}

	stdio := iocli.NewStdio()

	channel, closePort := connectHost(ctx, cfg, logger)
	closers = append(closers, closePort)
	channel.OnSaveError(func(message string) {
		stdio.Notify("Failed to save data to the cloud: " + message)
	})

	bridgeCfg := bridge.DefaultConfig()
	bridgeCfg.DataID = cfg.Expressions.Data
	bridgeCfg.ManifestID = cfg.Expressions.Manifest

	syncService := sync.NewService(
		bridge.New(calc, bridgeCfg, logger),
		channel,
		boltStorage,
		boltStorage,
		stdio,
		sync.Config{
			Slot:        cfg.Slot,
			Label:       cfg.Label,
			SettleDelay: cfg.SettleDelay,
			MaxRetries:  cfg.MaxRetries,
		},
		logger,
	)

	return cli.New(stdio, syncService, calc, cfg.Expressions.Autorun, logger), cleanup, nil
}

// connectHost dials the cloud-save host and returns the channel bound to it.
// Without a connection the channel is standalone: there is nobody to answer
// load requests, so the load runs from the local cache only.
func connectHost(ctx context.Context, cfg *config.Client, logger *slog.Logger) (*remote.Channel, func()) {
	newChannel := func(onPlatform bool) *remote.Channel {
		return remote.NewChannel(remote.Config{
			TrustedOrigin: cfg.Origin,
			Timeout:       cfg.Timeout,
			OnPlatform:    onPlatform,
		}, logger)
	}

	if cfg.HostURL == "" {
		return newChannel(false), func() {}
	}

	channel := newChannel(cfg.Platform || embeddedBy(cfg.HostURL, cfg.Origin))
	port, err := remote.DialWebSocket(ctx, cfg.HostURL, cfg.HostToken, channel.Deliver, logger)
	if err != nil {
		logger.Warn("Cloud-save host unavailable, running standalone", "url", cfg.HostURL, "error", err)
		return newChannel(false), func() {}
	}

	channel.Attach(port)
	return channel, func() {
		_ = port.Close()
	}
}

// embeddedBy reports whether the host at hostURL is the trusted platform
func embeddedBy(hostURL, trustedOrigin string) bool {
	if hostURL == "" {
		return false
	}
	origin, err := remote.OriginFromURL(hostURL)
	return err == nil && origin == trustedOrigin
}
