package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab is one entry in the tab bar. Count is how many rows are shown and
// Total how many are loaded.
type Tab struct {
	Name  string
	Count int
	Total int
}

// Label reads "Users (4)", or "Users (2/4)" while a filter hides rows
func (t Tab) Label() string {
	if t.Count == t.Total {
		return fmt.Sprintf("%s (%d)", t.Name, t.Total)
	}
	return fmt.Sprintf("%s (%d/%d)", t.Name, t.Count, t.Total)
}

// RenderTabs renders a tab bar with the given tabs
// selectedIdx indicates which tab is active (0-indexed)
// width is the total width to fill with the tab gap
//
// Layout:
//
//	╭───────────╮ ╭──────────────╮                 [Notification]
//	│ Users (4) │ │ Projects (2) │─────────────────
//	      active      inactive
func RenderTabs(tabs []Tab, selectedIdx int, width int, notificationContent string) string {
	renderedTabs := make([]string, 0, len(tabs))

	for i, tab := range tabs {
		label := tab.Label()
		if i == selectedIdx {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(label))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	notificationWidth := lipgloss.Width(notificationContent)
	gapWidth := max(width-lipgloss.Width(row)-notificationWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notificationContent != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notificationContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
