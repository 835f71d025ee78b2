package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorStaysInBounds(t *testing.T) {
	s := NewUIState(DashboardScreen)

	s.MoveCursor(-1, 3)
	assert.Equal(t, 0, s.Cursor(), "cursor never goes negative")

	s.MoveCursor(5, 3)
	assert.Equal(t, 2, s.Cursor(), "cursor stops at the last row")

	s.ClampCursor(1)
	assert.Equal(t, 0, s.Cursor(), "shrinking the list pulls the cursor in")

	s.ClampCursor(0)
	assert.Equal(t, 0, s.Cursor())
}

func TestCursorIsPerTab(t *testing.T) {
	s := NewUIState(DashboardScreen)
	s.MoveCursor(2, 5)

	s.SetTab(s.Tab().Next())
	assert.Equal(t, ProjectsTab, s.Tab())
	assert.Equal(t, 0, s.Cursor())

	s.SetTab(s.Tab().Next())
	assert.Equal(t, 2, s.Cursor())
}

func TestApplyLogoutResetsDashboard(t *testing.T) {
	s := NewUIState(DashboardScreen)
	s.SetTab(ProjectsTab)
	s.MoveCursor(1, 3)
	s.SetMode(HelpMode)

	effect := s.Apply(LoggedOut)

	assert.Equal(t, ClearSession, effect)
	assert.Equal(t, LandingScreen, s.Screen())
	assert.Equal(t, UsersTab, s.Tab())
	assert.Equal(t, NormalMode, s.Mode())
	assert.Equal(t, 0, s.Cursor())
}

func TestNotificationsKeepNewest(t *testing.T) {
	n := NewNotificationState()
	_, ok := n.Latest()
	assert.False(t, ok)

	for i := 0; i < maxNotifications+2; i++ {
		n.Add(LevelInfo, "refreshed")
	}
	n.Add(LevelError, "delete failed")

	assert.Len(t, n.All(), maxNotifications)
	latest, ok := n.Latest()
	assert.True(t, ok)
	assert.Equal(t, LevelError, latest.Level)
	assert.Equal(t, "delete failed", latest.Message)

	n.Clear()
	assert.False(t, n.HasAny())
}
