package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/khedmalink/khedma/internal/dashboard"
	"github.com/khedmalink/khedma/internal/filter"
	"github.com/khedmalink/khedma/internal/tui/layers"
	"github.com/khedmalink/khedma/internal/tui/modals"
	"github.com/khedmalink/khedma/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Context cancelled: the program is shutting down
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.sizeForms()
		return m, nil

	case loadedMsg:
		return m.handleLoaded(msg)

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case deleteResultMsg:
		return m.handleDeleteResult(msg)

	case modals.ResultMsg:
		return m.handleModalResult(msg)

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.ui.Screen() {
		case state.LandingScreen:
			return m.updateLanding(msg)
		case state.LoginScreen:
			return m.updateLogin(msg)
		default:
			return m.updateDashboard(msg)
		}
	}

	// Everything else (cursor blinks, form internals) goes to whatever
	// component currently owns input
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch {
	case m.ui.Screen() == state.LoginScreen:
		return m.updateLoginForm(msg)
	case m.ui.Mode() == state.ModalMode && m.modal != nil:
		return m, m.modal.Update(m.ctx, msg)
	case m.ui.Mode() == state.SearchMode:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// sizeForms fits open forms to the terminal
func (m Model) sizeForms() {
	width := layers.ModalWidth(m.ui.Width())
	if m.login != nil && m.login.form != nil {
		m.login.form.WithWidth(width)
	}
	if m.modal != nil {
		m.modal.Form().WithWidth(width)
	}
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.cache == nil || msg.cache != m.cache {
		m.logger.Debug("dropping load for a closed dashboard")
		return m, nil
	}
	if msg.cache.ApplyIf(msg.gen, msg.res) {
		m.ui.ClampCursor(m.visibleCount())
	}
	return m, nil
}

func (m Model) handleDeleteResult(msg deleteResultMsg) (tea.Model, tea.Cmd) {
	kind := "user"
	if msg.target.Tab == state.ProjectsTab {
		kind = "project"
	}
	if msg.err != nil {
		m.logger.Error("error deleting "+kind, "id", msg.target.ID, "error", msg.err)
		return m, nil
	}
	if msg.cache == nil || msg.cache != m.cache {
		return m, nil
	}

	var removed bool
	if msg.target.Tab == state.ProjectsTab {
		removed = msg.cache.RemoveProject(msg.target.ID)
	} else {
		removed = msg.cache.RemoveUser(msg.target.ID)
	}
	if removed {
		m.notes.Add(state.LevelInfo, fmt.Sprintf("Deleted %s '%s'", kind, msg.target.Label))
	}
	m.ui.ClampCursor(m.visibleCount())
	return m, nil
}

func (m Model) handleModalResult(msg modals.ResultMsg) (tea.Model, tea.Cmd) {
	// The dialog was dismissed while its request was in flight
	if m.modal == nil || m.modal.Kind() != msg.Kind {
		if msg.Outcome.Refresh {
			return m, m.refresh()
		}
		return m, nil
	}

	closed, cmd := m.modal.Resolve(msg.Outcome)
	if !closed {
		m.sizeForms()
		return m, cmd
	}

	m.modal = nil
	m.ui.SetMode(state.NormalMode)
	if text := successText(msg.Kind); text != "" {
		m.notes.Add(state.LevelInfo, text)
	}
	if msg.Outcome.Refresh {
		return m, m.refresh()
	}
	return m, nil
}

func successText(kind modals.Kind) string {
	switch kind {
	case modals.CreateUserKind:
		return "User created"
	case modals.CreateProjectKind:
		return "Project created"
	case modals.EditStatusKind:
		return "Project status updated"
	default:
		return ""
	}
}

// applyEffect performs the side effect of a screen transition
func (m Model) applyEffect(effect state.Effect, token string) {
	switch effect {
	case state.PersistSession:
		if err := m.session.SetLoggedIn(m.ctx, token); err != nil {
			m.logger.Error("error saving session flag", "error", err)
			m.notes.Add(state.LevelWarning, "Session not saved; you will need to log in again")
		}
	case state.ClearSession:
		if err := m.session.Clear(m.ctx); err != nil {
			m.logger.Error("error clearing session flag", "error", err)
		}
	}
}

// openDashboard starts a fresh dashboard session and loads it
func (m *Model) openDashboard() tea.Cmd {
	m.cache = dashboard.NewCache(m.client, m.logger)
	m.resetDashboard()
	return m.refresh()
}

// resetDashboard forgets per-session dashboard state
func (m *Model) resetDashboard() {
	m.search.Reset()
	m.search.Blur()
	m.role = filter.RoleAll
	m.modal = nil
	m.pendingDelete = nil
	m.ui.ResetDashboard()
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	effect := m.ui.Apply(state.LoggedOut)
	m.applyEffect(effect, "")
	m.resetDashboard()
	m.cache = nil
	m.notes.Clear()
	return m, nil
}
