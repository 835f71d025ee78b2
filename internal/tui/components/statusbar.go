package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps describes what the status bar shows
type StatusBarProps struct {
	Width int
	// Search is the search box, rendered when searching or filtering
	Search string
	// Filter names the active role filter, empty on the projects tab
	Filter string
	// Hint replaces the right side, e.g. a delete prompt
	Hint string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: search box and role filter
// Right side: hint, "press ? for help" by default
func RenderStatusBar(props StatusBarProps) string {
	var left []string
	if props.Search != "" {
		left = append(left, StatusBarSearchStyle.Render(props.Search))
	}
	if props.Filter != "" {
		left = append(left, "filter: "+props.Filter)
	}
	leftText := strings.Join(left, "  ")
	if leftText == "" {
		leftText = "Khedmalink Admin"
	}

	rightText := props.Hint
	if rightText == "" {
		rightText = "press ? for help"
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	gapWidth := max(props.Width-leftWidth-rightWidth-2, 1)

	return StatusBarStyle.
		Width(max(props.Width, 0)).
		Render(leftText + strings.Repeat(" ", gapWidth) + rightText)
}
