// Package core is the program-facing entry to the console
package core

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/khedmalink/khedma/internal/config"
	"github.com/khedmalink/khedma/internal/session"
	"github.com/khedmalink/khedma/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// The model itself is a value that Update replaces; App keeps the latest
// one so callers hold a stable pointer.
type App struct {
	model *tui.Model
}

// New creates an App around a freshly constructed console
func New(ctx context.Context, cfg *config.Config, client tui.Client, store session.Store, logger *slog.Logger) *App {
	model := tui.New(ctx, cfg, client, store, logger)
	return &App{model: &model}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update delegates to the model and stores the result back
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View implements tea.Model
func (a *App) View() tea.View {
	return a.model.View()
}

// Model returns the current console state, for tests
func (a *App) Model() tui.Model {
	return *a.model
}
