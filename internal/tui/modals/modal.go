// Package modals holds the dashboard's mutation dialogs. Each one wraps a
// huh form and a single API call, and resolves to an Outcome.
package modals

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/api"
)

// Kind identifies which dialog produced a result
type Kind int

const (
	CreateUserKind Kind = iota
	CreateProjectKind
	EditFieldKind
	EditStatusKind
)

// User-facing messages
const (
	msgNetwork           = "Network error. Please try again."
	msgCreateUserFailed  = "Failed to create user"
	msgCreateProjFailed  = "Failed to create project"
	msgStatusFailed      = "Failed to update project status"
	msgStatusUnreachable = "An error occurred while updating the project status"
)

// Outcome is how a submission ends. Close dismisses the dialog, Refresh
// asks the dashboard to re-fetch both lists, Err is shown inside the dialog.
type Outcome struct {
	Close   bool
	Refresh bool
	Err     string
}

var success = Outcome{Close: true, Refresh: true}

// failure keeps the dialog open with the server message, or fallback
func failure(err error, fallback, network string) Outcome {
	if api.IsNetwork(err) {
		return Outcome{Err: network}
	}
	return Outcome{Err: api.MessageOr(err, fallback)}
}

// ResultMsg reports a finished submission back to the console
type ResultMsg struct {
	Kind    Kind
	Outcome Outcome
}

// Modal is an open dialog
type Modal struct {
	kind   Kind
	title  string
	accent string

	form  *huh.Form
	build func() *huh.Form

	submit func(context.Context) Outcome
	errMsg string
	busy   bool
}

func newModal(kind Kind, title string, build func() *huh.Form, submit func(context.Context) Outcome) *Modal {
	return &Modal{
		kind:   kind,
		title:  title,
		form:   build(),
		build:  build,
		submit: submit,
	}
}

// Kind returns the dialog type
func (m *Modal) Kind() Kind { return m.kind }

// Title is the dialog heading
func (m *Modal) Title() string { return m.title }

// Err is the message from the last failed submission
func (m *Modal) Err() string { return m.errMsg }

// Busy is true while a submission is in flight
func (m *Modal) Busy() bool { return m.busy }

// Form exposes the underlying form for rendering
func (m *Modal) Form() *huh.Form { return m.form }

// Init focuses the first field
func (m *Modal) Init() tea.Cmd {
	return m.form.Init()
}

// Update forwards msg to the form and starts the submission once the form
// completes. Input is ignored while a submission is in flight.
func (m *Modal) Update(ctx context.Context, msg tea.Msg) tea.Cmd {
	if m.busy {
		return nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.busy = true
		m.errMsg = ""
		return tea.Batch(cmd, m.Submit(ctx))
	}
	return cmd
}

// Submit runs the API call in a command
func (m *Modal) Submit(ctx context.Context) tea.Cmd {
	kind, submit := m.kind, m.submit
	return func() tea.Msg {
		return ResultMsg{Kind: kind, Outcome: submit(ctx)}
	}
}

// Resolve applies an outcome. When the dialog stays open the form is
// rebuilt around the same values so the user can correct and resubmit.
func (m *Modal) Resolve(o Outcome) (closed bool, cmd tea.Cmd) {
	m.busy = false
	if o.Close {
		return true, nil
	}
	m.errMsg = o.Err
	m.form = m.build()
	return false, m.form.Init()
}
