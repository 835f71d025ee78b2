package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/khedmalink/khedma/internal/tui/modals"
	"github.com/khedmalink/khedma/internal/tui/state"
)

func (m Model) updateDashboard(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.ui.Mode() {
	case state.SearchMode:
		return m.updateSearch(msg)
	case state.ModalMode:
		return m.updateModal(msg)
	case state.DeleteConfirmMode:
		return m.updateDeleteConfirm(msg)
	case state.HelpMode:
		m.ui.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.updateNormal(msg)
	}
}

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.ui.SetTab(m.ui.Tab().Next())
		m.ui.ClampCursor(m.visibleCount())

	case key.Matches(msg, m.keys.NextItem):
		m.ui.MoveCursor(1, m.visibleCount())

	case key.Matches(msg, m.keys.PrevItem):
		m.ui.MoveCursor(-1, m.visibleCount())

	case key.Matches(msg, m.keys.Search):
		m.ui.SetMode(state.SearchMode)
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Back):
		// esc in normal mode drops a kept search
		if m.search.Value() != "" {
			m.search.Reset()
			m.ui.ClampCursor(m.visibleCount())
		}

	case key.Matches(msg, m.keys.CycleRole):
		if m.ui.Tab() == state.UsersTab {
			m.role = m.role.Next()
			m.ui.SetCursor(0)
		}

	case key.Matches(msg, m.keys.Create):
		if m.ui.Tab() == state.ProjectsTab {
			return m.openModal(modals.NewCreateProject(m.client, m.formTheme(m.cfg.ColorScheme.Create)))
		}
		return m.openModal(modals.NewCreateUser(m.client, m.formTheme(m.cfg.ColorScheme.Create)))

	case key.Matches(msg, m.keys.Edit):
		if u, ok := m.selectedUser(); ok {
			return m.openModal(modals.NewEditField(m.client, u, m.formTheme(m.cfg.ColorScheme.Edit)))
		}
		if p, ok := m.selectedProject(); ok {
			return m.openModal(modals.NewEditStatus(m.client, p, m.formTheme(m.cfg.ColorScheme.Edit)))
		}

	case key.Matches(msg, m.keys.Delete):
		if u, ok := m.selectedUser(); ok {
			m.pendingDelete = &state.DeleteTarget{Tab: state.UsersTab, ID: u.ID, Label: u.FullName()}
			m.ui.SetMode(state.DeleteConfirmMode)
		}
		if p, ok := m.selectedProject(); ok {
			m.pendingDelete = &state.DeleteTarget{Tab: state.ProjectsTab, ID: p.ID, Label: p.Title}
			m.ui.SetMode(state.DeleteConfirmMode)
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.ShowHelp):
		m.ui.SetMode(state.HelpMode)
	}
	return m, nil
}

// updateSearch edits the query; enter keeps it, esc clears it
func (m Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.ui.SetMode(state.NormalMode)
		return m, nil
	case "esc":
		m.search.Reset()
		m.search.Blur()
		m.ui.SetMode(state.NormalMode)
		m.ui.ClampCursor(m.visibleCount())
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.ui.SetCursor(0)
	}
	return m, cmd
}

func (m Model) openModal(modal *modals.Modal) (tea.Model, tea.Cmd) {
	m.modal = modal
	m.ui.SetMode(state.ModalMode)
	m.sizeForms()
	return m, modal.Init()
}

// updateModal gives keys to the open dialog; esc dismisses it without
// calling the backend
func (m Model) updateModal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.modal == nil {
		m.ui.SetMode(state.NormalMode)
		return m, nil
	}
	if key.Matches(msg, m.keys.Back) {
		m.modal = nil
		m.ui.SetMode(state.NormalMode)
		return m, nil
	}
	return m, m.modal.Update(m.ctx, msg)
}

func (m Model) updateDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		target := m.pendingDelete
		m.pendingDelete = nil
		m.ui.SetMode(state.NormalMode)
		if target == nil {
			return m, nil
		}
		return m, m.deleteCmd(*target)
	case key.Matches(msg, m.keys.Cancel):
		m.pendingDelete = nil
		m.ui.SetMode(state.NormalMode)
	}
	return m, nil
}
