package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/khedmalink/khedma/internal/tui/components"
	"github.com/khedmalink/khedma/internal/tui/layers"
	"github.com/khedmalink/khedma/internal/tui/modals"
	"github.com/khedmalink/khedma/internal/tui/notifications"
	"github.com/khedmalink/khedma/internal/tui/state"
	"github.com/khedmalink/khedma/internal/tui/theme"
)

// tabBarHeight and statusBarHeight are the rows around the table
const (
	tabBarHeight    = 3
	statusBarHeight = 1
	landingMaxWidth = 100
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	view := tea.NewView(m.render())
	view.AltScreen = true
	if theme.Background != "" {
		view.BackgroundColor = lipgloss.Color(theme.Background)
	}
	return view
}

// render returns the screen as text
func (m Model) render() string {
	// Wait for terminal size to be initialized
	if m.ui.Width() == 0 {
		return "Loading..."
	}

	switch m.ui.Screen() {
	case state.LoginScreen:
		return m.viewLogin()
	case state.DashboardScreen:
		return m.viewDashboard()
	default:
		return m.viewLanding()
	}
}

func (m Model) viewLanding() string {
	width := min(m.ui.Width()-4, landingMaxWidth)
	body := components.RenderMarkdown(components.LandingMarkdown, width)

	hint := components.SubtleStyle.Render(
		"press " + m.cfg.KeyMappings.OpenLogin + " for admin login • " + m.cfg.KeyMappings.Quit + " to quit",
	)
	content := lipgloss.JoinVertical(lipgloss.Center,
		components.TitleStyle.Render("Khedmalink"),
		body,
		"",
		hint,
	)
	return lipgloss.Place(m.ui.Width(), m.ui.Height(), lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Admin Login"))
	b.WriteString("\n\n")
	if m.login != nil && m.login.form != nil {
		b.WriteString(m.login.form.View())
	}
	if m.login != nil {
		switch {
		case m.login.busy:
			b.WriteString("\n")
			b.WriteString(components.SubtleStyle.Render("Signing in..."))
		case m.login.err != "":
			b.WriteString("\n")
			b.WriteString(components.ErrorTextStyle.Render(m.login.err))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(components.SubtleStyle.Render("esc to go back"))

	box := components.LoginBoxStyle.Render(b.String())
	return lipgloss.Place(m.ui.Width(), m.ui.Height(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewDashboard() string {
	width, height := m.ui.Width(), m.ui.Height()

	users, projects := m.visibleUsers(), m.visibleProjects()
	totalUsers, totalProjects := m.totals()
	tabs := []components.Tab{
		{Name: state.UsersTab.String(), Count: len(users), Total: totalUsers},
		{Name: state.ProjectsTab.String(), Count: len(projects), Total: totalProjects},
	}
	tabBar := components.RenderTabs(tabs, int(m.ui.Tab()), width, notifications.RenderLatest(m.notes))

	props := components.TableProps{
		Width:    width,
		Height:   max(height-tabBarHeight-statusBarHeight-1, 1),
		Selected: m.ui.Cursor(),
	}
	var table string
	if m.ui.Tab() == state.ProjectsTab {
		table = components.RenderProjectTable(projects, props)
	} else {
		table = components.RenderUserTable(users, props)
	}
	table = lipgloss.NewStyle().Height(props.Height).Render(table)

	base := lipgloss.JoinVertical(lipgloss.Left, tabBar, table, components.RenderStatusBar(m.statusBarProps()))

	switch m.ui.Mode() {
	case state.ModalMode:
		return layers.Compose(base, layers.CreateCenteredLayer(m.viewModal(), width, height))
	case state.HelpMode:
		return layers.Compose(base, layers.CreateCenteredLayer(components.RenderHelp(m.cfg.KeyMappings), width, height))
	}
	return base
}

func (m Model) statusBarProps() components.StatusBarProps {
	props := components.StatusBarProps{Width: m.ui.Width()}

	if m.ui.Mode() == state.SearchMode || m.search.Value() != "" {
		props.Search = m.search.View()
	}
	if m.ui.Tab() == state.UsersTab {
		props.Filter = m.role.Label()
	}

	switch {
	case m.ui.Mode() == state.DeleteConfirmMode && m.pendingDelete != nil:
		props.Hint = m.pendingDelete.Prompt()
	case m.cache != nil && !m.cache.Loaded():
		props.Hint = "Loading..."
	}
	return props
}

func (m Model) viewModal() string {
	if m.modal == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(m.modal.Title()))
	b.WriteString("\n\n")
	b.WriteString(m.modal.Form().View())
	switch {
	case m.modal.Busy():
		b.WriteString("\n")
		b.WriteString(components.SubtleStyle.Render("Saving..."))
	case m.modal.Err() != "":
		b.WriteString("\n")
		b.WriteString(components.ErrorTextStyle.Render(m.modal.Err()))
	}

	style := components.EditBoxStyle
	if k := m.modal.Kind(); k == modals.CreateUserKind || k == modals.CreateProjectKind {
		style = components.CreateBoxStyle
	}
	return style.Render(b.String())
}
