package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/khedmalink/khedma/internal/tui/state"
)

// FromLevel maps a notification level to a severity
func FromLevel(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}

// RenderInline renders a compact inline notification (for tab bar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderLatest renders the newest notification, or "" when there is none
func RenderLatest(n *state.NotificationState) string {
	latest, ok := n.Latest()
	if !ok {
		return ""
	}
	return RenderInline(FromLevel(latest.Level), latest.Message)
}
