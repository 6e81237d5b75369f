// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tables/cli/internal/bridge"
	"tables/cli/internal/config"
	"tables/cli/internal/dsn"
	"tables/cli/internal/errors"
	"tables/cli/internal/logging"
	"tables/cli/internal/shell"
	"tables/cli/internal/sqlexec"
	"tables/cli/internal/terminal"
	"tables/cli/internal/worker"
	"tables/cli/internal/xdg"
)

// runSession resolves the connection string, takes over the terminal and
// runs the shell until the user quits.
func runSession(parent context.Context, src dsnSource, cfg config.Config) error {
	info, err := dsn.Resolve(src.DSN)
	if err != nil {
		return errors.Wrap(errors.InvalidDSN, "cannot use connection string from "+src.Origin, err)
	}

	logger := newLogger(cfg).With(zap.String("session_id", uuid.NewString()))
	defer func() { _ = logger.Sync() }()
	logger.Info("session starting",
		logging.DSN(info.Normalized),
		zap.String("db_type", string(info.Type)),
		zap.String("source", src.Origin),
	)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev := terminal.New()
	if err := dev.Init(); err != nil {
		return errors.Wrap(errors.TerminalIO, "cannot take over the terminal", err)
	}
	defer func() {
		if err := dev.Restore(); err != nil {
			logger.Warn("restoring terminal", zap.Error(err))
		}
	}()

	err = serve(ctx, dev, sqlexec.NewOpener(info), cfg.ChannelCapacity, logger)
	if err != nil {
		logger.Error("session failed", zap.Error(err))
	} else {
		logger.Info("session finished")
	}
	return err
}

// serve runs the shell and the worker on a fresh channel pair and waits for
// both. The first fatal error cancels the other side and is returned.
func serve(ctx context.Context, term shell.Terminal, open sqlexec.Opener, capacity int, logger *zap.Logger) error {
	pair := bridge.New(capacity)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.New(open, pair.WorkerEnd(), logger).Run(gctx)
	})
	g.Go(func() error {
		return shell.New(term, pair.ShellEnd(), logger).Run(gctx)
	})
	return g.Wait()
}

// newLogger opens the session log file. Logging problems never stop the
// shell; they fall back to a no-op logger.
func newLogger(cfg config.Config) *zap.Logger {
	dir, err := xdg.StateDir()
	if err != nil {
		pterm.Warning.Printfln("Logging disabled: %v", err)
		return zap.NewNop()
	}
	logger, err := logging.New(logging.Options{Dir: dir, Level: cfg.LogLevel, Verbose: verboseEnabled()})
	if err != nil {
		pterm.Warning.Printfln("Logging disabled: %v", err)
		return zap.NewNop()
	}
	return logger
}
