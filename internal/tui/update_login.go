package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/api"
	"github.com/khedmalink/khedma/internal/tui/huhforms"
	"github.com/khedmalink/khedma/internal/tui/state"
)

const (
	msgLoginFailed  = "Login failed"
	msgLoginNetwork = "Network error. Please try again."
)

func (m Model) updateLanding(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.OpenLogin):
		m.ui.Apply(state.AdminRequested)
		m.login = &loginState{}
		m.buildLoginForm()
		return m, m.login.form.Init()
	}
	return m, nil
}

// buildLoginForm creates the form around the current login values
func (m Model) buildLoginForm() {
	m.login.form = huhforms.LoginForm(&m.login.email, &m.login.password).
		WithTheme(m.formTheme(m.cfg.ColorScheme.Accent))
	m.sizeForms()
}

func (m Model) updateLogin(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.ui.Apply(state.LoginCancelled)
		m.login = nil
		return m, nil
	}
	return m.updateLoginForm(msg)
}

// updateLoginForm feeds msg to the form and submits once it completes
func (m Model) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.login == nil || m.login.form == nil || m.login.busy {
		return m, nil
	}

	model, cmd := m.login.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.login.form = f
	}

	if m.login.form.State == huh.StateCompleted {
		return m, tea.Batch(cmd, m.submitLogin())
	}
	return m, cmd
}

func (m Model) submitLogin() tea.Cmd {
	m.login.busy = true
	m.login.err = ""
	return m.loginCmd(m.login.email, m.login.password)
}

func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	// The user went back to the landing page before the answer came
	if m.ui.Screen() != state.LoginScreen || m.login == nil {
		return m, nil
	}
	m.login.busy = false

	if msg.err != nil {
		m.logger.Error("error logging in", "email", m.login.email, "error", msg.err)
		if api.IsNetwork(msg.err) {
			m.login.err = msgLoginNetwork
		} else {
			m.login.err = api.MessageOr(msg.err, msgLoginFailed)
		}
		m.login.password = ""
		m.buildLoginForm()
		return m, m.login.form.Init()
	}

	m.logger.Info("admin logged in", "email", m.login.email)
	effect := m.ui.Apply(state.LoginSucceeded)
	m.applyEffect(effect, msg.result.Token)
	m.login = nil
	cmd := m.openDashboard()
	return m, cmd
}
