// Package cli provides helpers for running cobra commands against the fake
// backend in tests
package cli

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/khedmalink/khedma/internal/api"
	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/config"
	"github.com/khedmalink/khedma/internal/session"
	"github.com/khedmalink/khedma/internal/testutil/fakeapi"
)

// SetupCLITest starts a fake backend seeded with the sample fixtures and
// returns it together with a logged-in CLI pointed at it
func SetupCLITest(t *testing.T) (*fakeapi.Server, *cli.CLI) {
	t.Helper()

	server := fakeapi.New(t, fakeapi.SampleUsers(), fakeapi.SampleProjects())
	c := NewTestCLI(t, server.URL)
	if err := c.Session.SetLoggedIn(context.Background(), ""); err != nil {
		t.Fatalf("Failed to set session flag: %v", err)
	}
	return server, c
}

// NewTestCLI returns a logged-out CLI with an in-memory session
func NewTestCLI(t *testing.T, baseURL string) *cli.CLI {
	t.Helper()

	cfg := config.Default()
	cfg.API.BaseURL = baseURL
	client := api.New(baseURL, api.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return cli.New(cfg, client, session.New(session.NewMemoryStore()))
}
