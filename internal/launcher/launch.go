// Package launcher starts the interactive console
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/tui/core"
)

// Launch starts the TUI application and blocks until it exits
func Launch(parent context.Context, opts cli.Options) error {
	if parent == nil {
		parent = context.Background()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Config, file logging, session store and API client
	env, err := cli.NewCLI(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := env.Close(); err != nil {
			slog.Error("error closing console resources", "error", err)
		}
	}()

	slog.Info("starting console", "api", env.Client.BaseURL(), "session_backend", env.Config.Session.Backend)

	app := core.New(ctx, env.Config, env.Client, env.Session, slog.Default())
	p := tea.NewProgram(app, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
