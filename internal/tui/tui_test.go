package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/khedmalink/khedma/internal/api"
	"github.com/khedmalink/khedma/internal/config"
	"github.com/khedmalink/khedma/internal/filter"
	"github.com/khedmalink/khedma/internal/session"
	"github.com/khedmalink/khedma/internal/testutil/fakeapi"
	"github.com/khedmalink/khedma/internal/tui/modals"
	"github.com/khedmalink/khedma/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type harness struct {
	srv    *fakeapi.Server
	client *api.Client
	store  *session.Session
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := fakeapi.New(t, fakeapi.SampleUsers(), fakeapi.SampleProjects())
	return &harness{
		srv:    srv,
		client: api.New(srv.URL, api.WithLogger(quietLogger())),
		store:  session.New(session.NewMemoryStore()),
	}
}

func (h *harness) model(t *testing.T) Model {
	t.Helper()
	m := New(context.Background(), config.Default(), h.client, h.store, quietLogger())
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// loggedIn returns a dashboard model with both lists loaded
func (h *harness) loggedIn(t *testing.T) Model {
	t.Helper()
	require.NoError(t, h.store.SetLoggedIn(context.Background(), ""))
	m := h.model(t)
	require.Equal(t, state.DashboardScreen, m.Screen())
	return update(t, m, m.Init()())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func pressCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = update(t, m, press(r))
	}
	return m
}

type failingStore struct{}

func (failingStore) IsLoggedIn(context.Context) (bool, error) {
	return false, errors.New("disk on fire")
}
func (failingStore) SetLoggedIn(context.Context, string) error { return nil }
func (failingStore) Clear(context.Context) error               { return nil }

func TestNew_InitialScreen(t *testing.T) {
	t.Run("landing without a session", func(t *testing.T) {
		h := newHarness(t)
		m := h.model(t)
		assert.Equal(t, state.LandingScreen, m.Screen())
		assert.Nil(t, m.Init())
	})

	t.Run("dashboard with a session", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.store.SetLoggedIn(context.Background(), ""))
		m := h.model(t)
		assert.Equal(t, state.DashboardScreen, m.Screen())
		assert.NotNil(t, m.Init())
	})

	t.Run("read error falls back to landing", func(t *testing.T) {
		h := newHarness(t)
		m := New(context.Background(), config.Default(), h.client, failingStore{}, quietLogger())
		assert.Equal(t, state.LandingScreen, m.Screen())
	})
}

func TestLanding_OpenLoginAndBack(t *testing.T) {
	h := newHarness(t)
	m := h.model(t)

	m = update(t, m, press('a'))
	require.Equal(t, state.LoginScreen, m.Screen())
	require.NotNil(t, m.login)
	assert.NotNil(t, m.login.form)

	m = update(t, m, pressCode(tea.KeyEscape))
	assert.Equal(t, state.LandingScreen, m.Screen())
	assert.Nil(t, m.login)
}

func TestLanding_QuitKey(t *testing.T) {
	h := newHarness(t)
	m := h.model(t)

	_, cmd := updateCmd(t, m, press('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLogin_SuccessPersistsSession(t *testing.T) {
	h := newHarness(t)
	m := h.model(t)
	m = update(t, m, press('a'))

	m, cmd := updateCmd(t, m, m.loginCmd("admin@khedmalink.com", "secret")())
	assert.Equal(t, state.DashboardScreen, m.Screen())
	require.NotNil(t, cmd, "entering the dashboard loads it")

	loggedIn, err := h.store.IsLoggedIn(context.Background())
	require.NoError(t, err)
	assert.True(t, loggedIn)

	m = update(t, m, cmd())
	assert.Len(t, m.visibleUsers(), 4)
	assert.Len(t, m.visibleProjects(), 2)

	fresh := h.model(t)
	assert.Equal(t, state.DashboardScreen, fresh.Screen())
}

func TestLogin_Failures(t *testing.T) {
	t.Run("server message is shown", func(t *testing.T) {
		h := newHarness(t)
		h.srv.Fail("/user/login", http.StatusUnauthorized, "Invalid credentials")
		m := update(t, h.model(t), press('a'))

		m = update(t, m, m.loginCmd("admin@khedmalink.com", "nope")())
		assert.Equal(t, state.LoginScreen, m.Screen())
		assert.Equal(t, "Invalid credentials", m.login.err)
		assert.False(t, m.login.busy)
	})

	t.Run("unparseable body falls back", func(t *testing.T) {
		h := newHarness(t)
		h.srv.FailRaw("/user/login", http.StatusBadGateway)
		m := update(t, h.model(t), press('a'))

		m = update(t, m, m.loginCmd("admin@khedmalink.com", "nope")())
		assert.Equal(t, msgLoginFailed, m.login.err)
	})

	t.Run("network error", func(t *testing.T) {
		h := newHarness(t)
		h.srv.Close()
		m := update(t, h.model(t), press('a'))

		m = update(t, m, m.loginCmd("admin@khedmalink.com", "nope")())
		assert.Equal(t, msgLoginNetwork, m.login.err)
	})

	t.Run("session stays unset", func(t *testing.T) {
		h := newHarness(t)
		h.srv.Fail("/user/login", http.StatusUnauthorized, "Invalid credentials")
		m := update(t, h.model(t), press('a'))
		_ = update(t, m, m.loginCmd("admin@khedmalink.com", "nope")())

		loggedIn, err := h.store.IsLoggedIn(context.Background())
		require.NoError(t, err)
		assert.False(t, loggedIn)
	})
}

func TestLogin_ResultAfterBackIsIgnored(t *testing.T) {
	h := newHarness(t)
	m := update(t, h.model(t), press('a'))
	msg := m.loginCmd("admin@khedmalink.com", "secret")()

	m = update(t, m, pressCode(tea.KeyEscape))
	m = update(t, m, msg)
	assert.Equal(t, state.LandingScreen, m.Screen())
}

func TestLogout_ClearsSession(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)

	m = update(t, m, press('L'))
	assert.Equal(t, state.LandingScreen, m.Screen())
	assert.Nil(t, m.cache)

	loggedIn, err := h.store.IsLoggedIn(context.Background())
	require.NoError(t, err)
	assert.False(t, loggedIn)

	fresh := h.model(t)
	assert.Equal(t, state.LandingScreen, fresh.Screen())
}

func TestLoad_DroppedAfterLogout(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.SetLoggedIn(context.Background(), ""))
	m := h.model(t)
	pending := m.Init()()

	m = update(t, m, press('L'))
	m = update(t, m, pending)
	assert.Nil(t, m.cache)
	assert.Equal(t, state.LandingScreen, m.Screen())
}

func TestLoad_NewestRefreshWins(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)

	older := m.refresh()()
	require.NoError(t, h.client.DeleteUser(context.Background(), 4))
	newer := m.refresh()()

	m = update(t, m, newer)
	m = update(t, m, older)
	assert.Len(t, m.visibleUsers(), 3, "the older load is dropped")

	h.srv.Fail("/admin/all/users", http.StatusInternalServerError, "down")
	m = update(t, m, m.refresh()())
	assert.Len(t, m.visibleUsers(), 3, "a failed half keeps the previous list")
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)

	m = update(t, m, press('d'))
	require.Equal(t, state.DeleteConfirmMode, m.ui.Mode())
	require.NotNil(t, m.pendingDelete)
	assert.Equal(t, "Delete user 'Amal Ben Salah'? [y]es [n]o", m.pendingDelete.Prompt())

	m, cmd := updateCmd(t, m, press('y'))
	require.NotNil(t, cmd)
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	m = update(t, m, cmd())

	users := m.visibleUsers()
	require.Len(t, users, 3)
	for _, u := range users {
		assert.NotEqual(t, 1, u.ID)
	}

	calls := h.srv.Calls(http.MethodDelete, "/user/delete")
	require.Len(t, calls, 1)
	assert.Equal(t, "1", calls[0].Query["id"])
	assert.Len(t, h.srv.Calls(http.MethodGet, "/admin/all/users"), 1, "no refresh after delete")
}

func TestDelete_ProjectOnProjectsTab(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)

	m = update(t, m, pressCode(tea.KeyTab))
	m = update(t, m, press('j'))
	m = update(t, m, press('d'))
	require.NotNil(t, m.pendingDelete)
	assert.Equal(t, 11, m.pendingDelete.ID)

	m, cmd := updateCmd(t, m, press('y'))
	m = update(t, m, cmd())
	require.Len(t, m.visibleProjects(), 1)
	assert.Equal(t, 10, m.visibleProjects()[0].ID)
	assert.Equal(t, 0, m.ui.Cursor(), "cursor clamped to the remaining row")
}

func TestDelete_FailureLeavesList(t *testing.T) {
	h := newHarness(t)
	h.srv.Fail("/user/delete", http.StatusInternalServerError, "nope")
	m := h.loggedIn(t)

	m = update(t, m, press('d'))
	m, cmd := updateCmd(t, m, press('y'))
	m = update(t, m, cmd())

	assert.Len(t, m.visibleUsers(), 4)
	assert.Len(t, h.srv.Calls(http.MethodDelete, "/user/delete"), 1)
	assert.False(t, m.notes.HasAny(), "delete failures are only logged")
}

func TestDelete_Cancel(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)

	m = update(t, m, press('d'))
	m, cmd := updateCmd(t, m, press('n'))
	assert.Nil(t, cmd)
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Nil(t, m.pendingDelete)
	assert.Empty(t, h.srv.Calls(http.MethodDelete, ""))
}

func TestSearchAndRoleFilter(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)

	m = update(t, m, press('/'))
	require.Equal(t, state.SearchMode, m.ui.Mode())
	m = typeText(t, m, "KHEDMALINK")
	m = update(t, m, pressCode(tea.KeyEnter))
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Len(t, m.visibleUsers(), 2, "amal and admin share the domain")
	assert.Contains(t, m.render(), "Users (2/4)", "tab shows shown/loaded")
	assert.Contains(t, m.render(), "Projects (0/2)")

	m = update(t, m, press('f'))
	assert.Equal(t, filter.RoleFilter("freelancer"), m.role)
	users := m.visibleUsers()
	require.Len(t, users, 1)
	assert.Equal(t, 1, users[0].ID)

	m = update(t, m, pressCode(tea.KeyEscape))
	assert.Empty(t, m.search.Value())
	assert.Len(t, m.visibleUsers(), 1, "role filter survives clearing the search")
}

func TestSearch_EscClears(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)

	m = update(t, m, press('/'))
	m = typeText(t, m, "go api")
	m = update(t, m, pressCode(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Empty(t, m.search.Value())
}

func TestNavigation(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)

	m = update(t, m, press('j'))
	m = update(t, m, pressCode(tea.KeyDown))
	assert.Equal(t, 2, m.ui.Cursor())
	for range 10 {
		m = update(t, m, press('j'))
	}
	assert.Equal(t, 3, m.ui.Cursor(), "stops at the last user")

	m = update(t, m, pressCode(tea.KeyTab))
	assert.Equal(t, state.ProjectsTab, m.ui.Tab())
	assert.Equal(t, 0, m.ui.Cursor())

	m = update(t, m, pressCode(tea.KeyTab))
	assert.Equal(t, 3, m.ui.Cursor(), "each tab keeps its own selection")
}

func TestModals_Open(t *testing.T) {
	tests := []struct {
		name  string
		keys  []tea.KeyPressMsg
		kind  modals.Kind
		title string
	}{
		{"create user", []tea.KeyPressMsg{press('n')}, modals.CreateUserKind, "Create User"},
		{"create project", []tea.KeyPressMsg{pressCode(tea.KeyTab), press('n')}, modals.CreateProjectKind, "Create Project"},
		{"edit user", []tea.KeyPressMsg{press('e')}, modals.EditFieldKind, "Edit User"},
		{"edit status", []tea.KeyPressMsg{pressCode(tea.KeyTab), press('e')}, modals.EditStatusKind, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			m := h.loggedIn(t)
			for _, k := range tt.keys {
				m = update(t, m, k)
			}
			require.Equal(t, state.ModalMode, m.ui.Mode())
			require.NotNil(t, m.modal)
			assert.Equal(t, tt.kind, m.modal.Kind())
			if tt.title != "" {
				assert.Equal(t, tt.title, m.modal.Title())
			}
		})
	}
}

func TestModal_EscCancelsWithoutCall(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)

	m = update(t, m, press('n'))
	m = update(t, m, pressCode(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Nil(t, m.modal)
	assert.Empty(t, h.srv.Calls(http.MethodPost, "/user/create"))
}

func TestModal_SuccessClosesAndRefreshes(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)
	m = update(t, m, press('n'))

	m, cmd := updateCmd(t, m, modals.ResultMsg{Kind: modals.CreateUserKind, Outcome: modals.Outcome{Close: true, Refresh: true}})
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.Nil(t, m.modal)
	require.NotNil(t, cmd)
	assert.IsType(t, loadedMsg{}, cmd())

	latest, ok := m.notes.Latest()
	require.True(t, ok)
	assert.Equal(t, "User created", latest.Message)
}

func TestModal_FailureStaysOpen(t *testing.T) {
	h := newHarness(t)
	m := h.loggedIn(t)
	m = update(t, m, press('n'))

	m = update(t, m, modals.ResultMsg{Kind: modals.CreateUserKind, Outcome: modals.Outcome{Err: "Email already used"}})
	assert.Equal(t, state.ModalMode, m.ui.Mode())
	require.NotNil(t, m.modal)
	assert.Equal(t, "Email already used", m.modal.Err())
	assert.Contains(t, m.render(), "Email already used")
}

func TestModal_EditFieldFailureStillRefreshes(t *testing.T) {
	h := newHarness(t)
	h.srv.Fail("/user/update", http.StatusInternalServerError, "boom")
	m := h.loggedIn(t)
	m = update(t, m, press('e'))
	require.NotNil(t, m.modal)

	msg := m.modal.Submit(context.Background())()
	m, cmd := updateCmd(t, m, msg)
	assert.Nil(t, m.modal)
	assert.Equal(t, state.NormalMode, m.ui.Mode())
	assert.NotNil(t, cmd)
	assert.Len(t, h.srv.Calls(http.MethodPost, "/user/update"), 1)
}

func TestRender(t *testing.T) {
	h := newHarness(t)

	t.Run("landing", func(t *testing.T) {
		m := h.model(t)
		assert.Contains(t, m.render(), "admin login")
	})

	t.Run("dashboard", func(t *testing.T) {
		m := h.loggedIn(t)
		out := m.render()
		assert.Contains(t, out, "Users (4)")
		assert.Contains(t, out, "Projects (2)")
		assert.Contains(t, out, "Amal Ben Salah")
		assert.Contains(t, out, "https://amal.dev", "portfolio link is shown")

		projects := update(t, m, pressCode(tea.KeyTab)).render()
		assert.Contains(t, projects, "Landing page and dashboard", "description is shown")
		assert.Contains(t, projects, "REST backend for payments")

		m = update(t, m, press('d'))
		assert.Contains(t, m.render(), "[y]es [n]o")
	})

	t.Run("help overlay", func(t *testing.T) {
		m := h.loggedIn(t)
		m = update(t, m, press('?'))
		assert.Contains(t, m.render(), "Keyboard Shortcuts")

		m = update(t, m, press('x'))
		assert.Equal(t, state.NormalMode, m.ui.Mode())
	})

	t.Run("before the first resize", func(t *testing.T) {
		m := New(context.Background(), config.Default(), h.client, session.New(session.NewMemoryStore()), quietLogger())
		assert.Equal(t, "Loading...", m.render())
	})
}

func TestUpdate_CancelledContextQuits(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := New(ctx, config.Default(), h.client, h.store, quietLogger())
	cancel()

	_, cmd := m.Update(press('j'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
