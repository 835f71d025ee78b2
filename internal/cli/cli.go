package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/khedmalink/khedma/internal/api"
	"github.com/khedmalink/khedma/internal/cli/styles"
	"github.com/khedmalink/khedma/internal/config"
	"github.com/khedmalink/khedma/internal/logging"
	"github.com/khedmalink/khedma/internal/session"
)

// Options are the root flags that shape the CLI context
type Options struct {
	// APIURL overrides the configured backend address when non-empty
	APIURL string
	// Ephemeral keeps the session flag in memory for this run only
	Ephemeral bool
}

// CLI represents the CLI application context
type CLI struct {
	Config  *config.Config
	Client  *api.Client
	Session session.Store

	closers []io.Closer
}

// NewCLI loads configuration, starts file logging, and opens the session
// store and API client
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.APIURL != "" {
		cfg.API.BaseURL = opts.APIURL
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	logFile, err := logging.Init(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	var store *session.Session
	if opts.Ephemeral {
		store = session.New(session.NewMemoryStore())
	} else {
		store, err = session.Open(ctx, cfg.Session, dataDir)
		if err != nil {
			_ = logFile.Close()
			return nil, fmt.Errorf("failed to open session store: %w", err)
		}
	}

	client := api.New(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(slog.Default()),
	)

	c := New(cfg, client, store)
	c.closers = []io.Closer{store, logFile}
	return c, nil
}

// New assembles a CLI from ready-made parts
func New(cfg *config.Config, client *api.Client, store session.Store) *CLI {
	styles.Init(cfg.ColorScheme)
	return &CLI{Config: cfg, Client: client, Session: store}
}

// RequireLogin fails with ErrNotLoggedIn unless the admin flag is set
func (c *CLI) RequireLogin(ctx context.Context) error {
	loggedIn, err := c.Session.IsLoggedIn(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if !loggedIn {
		return ErrNotLoggedIn
	}
	return nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
