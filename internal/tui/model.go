// Package tui is the admin console: a landing page, the admin login gate and
// the users/projects dashboard.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/api"
	"github.com/khedmalink/khedma/internal/config"
	"github.com/khedmalink/khedma/internal/dashboard"
	"github.com/khedmalink/khedma/internal/filter"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/khedmalink/khedma/internal/session"
	"github.com/khedmalink/khedma/internal/tui/components"
	"github.com/khedmalink/khedma/internal/tui/huhforms"
	"github.com/khedmalink/khedma/internal/tui/modals"
	"github.com/khedmalink/khedma/internal/tui/state"
	"github.com/khedmalink/khedma/internal/tui/theme"
)

// Client is the part of the backend the console talks to
type Client interface {
	dashboard.Lister
	modals.UserCreator
	modals.ProjectCreator
	modals.FieldUpdater
	modals.StatusUpdater

	Login(ctx context.Context, email, password string) (api.LoginResult, error)
	DeleteUser(ctx context.Context, id int) error
	DeleteProject(ctx context.Context, id int) error
}

// loginState is the admin login form and its last result
type loginState struct {
	email    string
	password string
	form     *huh.Form
	err      string
	busy     bool
}

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	client  Client
	session session.Store
	logger  *slog.Logger
	keys    keyMap

	ui    *state.UIState
	notes *state.NotificationState

	login *loginState

	// cache is nil outside the dashboard
	cache         *dashboard.Cache
	search        textinput.Model
	role          filter.RoleFilter
	modal         *modals.Modal
	pendingDelete *state.DeleteTarget
}

// New creates the console. The session flag is read once here to pick the
// first screen; a read error is logged and treated as logged out.
func New(ctx context.Context, cfg *config.Config, client Client, store session.Store, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	theme.Init(cfg.ColorScheme)
	components.InitStyles(cfg.ColorScheme)

	loggedIn, err := store.IsLoggedIn(ctx)
	if err != nil {
		logger.Error("error reading session flag", "error", err)
		loggedIn = false
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search..."

	m := Model{
		ctx:     ctx,
		cfg:     cfg,
		client:  client,
		session: store,
		logger:  logger,
		keys:    newKeyMap(cfg.KeyMappings),
		ui:      state.NewUIState(state.InitialScreen(loggedIn)),
		notes:   state.NewNotificationState(),
		search:  search,
		role:    filter.RoleAll,
	}
	if m.ui.Screen() == state.DashboardScreen {
		m.cache = dashboard.NewCache(client, logger)
	}
	return m
}

// Init starts the first dashboard load when the session was restored
func (m Model) Init() tea.Cmd {
	if m.ui.Screen() == state.DashboardScreen {
		return m.refresh()
	}
	return nil
}

// Screen returns the page being shown
func (m Model) Screen() state.Screen {
	return m.ui.Screen()
}

func (m Model) formTheme(accent string) huh.Theme {
	return huhforms.CreateTheme(m.cfg.ColorScheme, accent)
}

func (m Model) visibleUsers() []models.User {
	if m.cache == nil {
		return nil
	}
	return filter.Users(m.cache.Users(), m.search.Value(), m.role)
}

func (m Model) visibleProjects() []models.Project {
	if m.cache == nil {
		return nil
	}
	return filter.Projects(m.cache.Projects(), m.search.Value())
}

// totals are the loaded list sizes before any filter
func (m Model) totals() (int, int) {
	if m.cache == nil {
		return 0, 0
	}
	return len(m.cache.Users()), len(m.cache.Projects())
}

// visibleCount is the number of rows on the active tab
func (m Model) visibleCount() int {
	if m.ui.Tab() == state.ProjectsTab {
		return len(m.visibleProjects())
	}
	return len(m.visibleUsers())
}

// selectedUser returns the highlighted user on the users tab
func (m Model) selectedUser() (models.User, bool) {
	users := m.visibleUsers()
	i := m.ui.Cursor()
	if m.ui.Tab() != state.UsersTab || i >= len(users) {
		return models.User{}, false
	}
	return users[i], true
}

// selectedProject returns the highlighted project on the projects tab
func (m Model) selectedProject() (models.Project, bool) {
	projects := m.visibleProjects()
	i := m.ui.Cursor()
	if m.ui.Tab() != state.ProjectsTab || i >= len(projects) {
		return models.Project{}, false
	}
	return projects[i], true
}
