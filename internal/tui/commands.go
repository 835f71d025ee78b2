package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/khedmalink/khedma/internal/api"
	"github.com/khedmalink/khedma/internal/dashboard"
	"github.com/khedmalink/khedma/internal/tui/state"
)

// loadedMsg carries a finished dashboard load. cache identifies the
// dashboard session that asked for it so a load finishing after logout is
// dropped.
type loadedMsg struct {
	cache *dashboard.Cache
	gen   uint64
	res   dashboard.LoadResult
}

type loginResultMsg struct {
	result api.LoginResult
	err    error
}

type deleteResultMsg struct {
	cache  *dashboard.Cache
	target state.DeleteTarget
	err    error
}

// refresh reloads both lists in the background
func (m Model) refresh() tea.Cmd {
	if m.cache == nil {
		return nil
	}
	ctx, cache := m.ctx, m.cache
	gen := cache.Begin()
	return func() tea.Msg {
		return loadedMsg{cache: cache, gen: gen, res: cache.Fetch(ctx)}
	}
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		result, err := client.Login(ctx, email, password)
		return loginResultMsg{result: result, err: err}
	}
}

// deleteCmd issues exactly one DELETE for target
func (m Model) deleteCmd(target state.DeleteTarget) tea.Cmd {
	ctx, client, cache := m.ctx, m.client, m.cache
	return func() tea.Msg {
		var err error
		if target.Tab == state.ProjectsTab {
			err = client.DeleteProject(ctx, target.ID)
		} else {
			err = client.DeleteUser(ctx, target.ID)
		}
		return deleteResultMsg{cache: cache, target: target, err: err}
	}
}
