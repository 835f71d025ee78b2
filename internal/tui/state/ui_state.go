package state

// Mode represents the current interaction mode of the dashboard.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	SearchMode                    // Typing into the search box (/)
	ModalMode                     // A mutation form is open
	DeleteConfirmMode             // Confirming user or project deletion
	HelpMode                      // Displaying help screen
)

// Tab is the list shown on the dashboard
type Tab int

const (
	UsersTab Tab = iota
	ProjectsTab
)

func (t Tab) String() string {
	if t == ProjectsTab {
		return "Projects"
	}
	return "Users"
}

// Next cycles between the two tabs
func (t Tab) Next() Tab {
	if t == UsersTab {
		return ProjectsTab
	}
	return UsersTab
}

// UIState manages the user interface state.
// This includes the active screen and tab, row selection per tab,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	screen Screen
	mode   Mode
	tab    Tab

	// cursors holds the selected row index for each tab
	cursors map[Tab]int

	width  int
	height int
}

// NewUIState creates a new UIState starting on screen.
func NewUIState(screen Screen) *UIState {
	return &UIState{
		screen:  screen,
		mode:    NormalMode,
		tab:     UsersTab,
		cursors: map[Tab]int{UsersTab: 0, ProjectsTab: 0},
	}
}

// Screen returns the active screen.
func (s *UIState) Screen() Screen {
	return s.screen
}

// Apply runs Transition for event and stores the resulting screen.
// Leaving the dashboard resets dashboard-only state.
func (s *UIState) Apply(event Event) Effect {
	next, effect := Transition(s.screen, event)
	if next != s.screen && s.screen == DashboardScreen {
		s.ResetDashboard()
	}
	s.screen = next
	return effect
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Tab returns the active dashboard tab.
func (s *UIState) Tab() Tab {
	return s.tab
}

// SetTab switches the active tab.
func (s *UIState) SetTab(tab Tab) {
	s.tab = tab
}

// Cursor returns the selected row on the active tab.
func (s *UIState) Cursor() int {
	return s.cursors[s.tab]
}

// SetCursor sets the selected row on the active tab.
func (s *UIState) SetCursor(index int) {
	if index < 0 {
		index = 0
	}
	s.cursors[s.tab] = index
}

// MoveCursor moves the selection by delta, staying within [0, count).
func (s *UIState) MoveCursor(delta, count int) {
	s.SetCursor(s.cursors[s.tab] + delta)
	s.ClampCursor(count)
}

// ClampCursor keeps the selection valid after the visible list changed.
func (s *UIState) ClampCursor(count int) {
	if count <= 0 {
		s.cursors[s.tab] = 0
		return
	}
	if s.cursors[s.tab] >= count {
		s.cursors[s.tab] = count - 1
	}
}

// ResetDashboard clears selection and mode, as on logout.
func (s *UIState) ResetDashboard() {
	s.mode = NormalMode
	s.tab = UsersTab
	s.cursors = map[Tab]int{UsersTab: 0, ProjectsTab: 0}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}
