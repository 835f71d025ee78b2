// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/khedmalink/khedma/internal/config/colors"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/khedmalink/khedma/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// TitleStyle is used for headings
	TitleStyle lipgloss.Style

	// SubtleStyle is used for hints and empty states
	SubtleStyle lipgloss.Style

	// HeaderStyle is the table header row
	HeaderStyle lipgloss.Style

	// RowStyle and SelectedRowStyle are table rows
	RowStyle         lipgloss.Style
	SelectedRowStyle lipgloss.Style

	// RatingStyle colors star ratings
	RatingStyle lipgloss.Style

	// CreateBoxStyle frames creation dialogs (green border)
	CreateBoxStyle lipgloss.Style

	// EditBoxStyle frames edit dialogs (blue border)
	EditBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle frames delete confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle frames the help screen
	HelpBoxStyle lipgloss.Style

	// LoginBoxStyle frames the admin login
	LoginBoxStyle lipgloss.Style

	// ErrorTextStyle is inline error text inside dialogs
	ErrorTextStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// StatusBarSearchStyle defines the style for the search section in the status bar
	StatusBarSearchStyle lipgloss.Style

	roleStyles   map[models.Role]lipgloss.Style
	statusStyles map[models.ProjectStatus]lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	theme.Init(c)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true).Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Title)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle))

	HeaderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.HeaderFg)).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(c.PanelBorder))

	RowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal))

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.SelectedFg)).
		Background(lipgloss.Color(c.SelectedBg)).
		Bold(true)

	RatingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.RatingFg))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	CreateBoxStyle = box.BorderForeground(lipgloss.Color(c.Create))
	EditBoxStyle = box.BorderForeground(lipgloss.Color(c.Edit))
	DeleteConfirmBoxStyle = box.BorderForeground(lipgloss.Color(c.Delete))
	HelpBoxStyle = box.BorderForeground(lipgloss.Color(c.Edit))
	LoginBoxStyle = box.BorderForeground(lipgloss.Color(c.Accent))

	ErrorTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.ErrorFg)).Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.StatusBarText)).
		Background(lipgloss.Color(c.StatusBarBg)).
		Padding(0, 1)

	StatusBarSearchStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.SearchPrompt)).
		Bold(true)

	roleStyles = map[models.Role]lipgloss.Style{
		models.RoleFreelancer: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Freelancer)),
		models.RoleRecruiter:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Recruiter)),
		models.RoleAdmin:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Admin)),
		models.RoleValidator:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Validator)),
	}

	statusStyles = map[models.ProjectStatus]lipgloss.Style{
		models.StatusOpen:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.StatusOpen)),
		models.StatusActive:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.StatusOpen)),
		models.StatusPending:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.StatusPending)),
		models.StatusClosed:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.StatusClosed)),
		models.StatusFinished: lipgloss.NewStyle().Foreground(lipgloss.Color(c.StatusClosed)),
	}
}

// RoleStyle returns the badge style for role
func RoleStyle(role models.Role) lipgloss.Style {
	if s, ok := roleStyles[role]; ok {
		return s
	}
	return RowStyle
}

// StatusStyle returns the badge style for a project status
func StatusStyle(status models.ProjectStatus) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return RowStyle
}
