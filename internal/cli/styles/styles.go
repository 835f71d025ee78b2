// Package styles holds the lipgloss styles for human-readable CLI output
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/khedmalink/khedma/internal/config/colors"
	"github.com/khedmalink/khedma/internal/models"
)

var (
	// Text styles
	TitleStyle    = lipgloss.NewStyle().Bold(true)
	SubtitleStyle = lipgloss.NewStyle()
	ValueStyle    = lipgloss.NewStyle()

	// Status styles
	SuccessStyle = lipgloss.NewStyle().Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Bold(true)
	WarningStyle = lipgloss.NewStyle().Bold(true)

	roleColors = map[models.Role]string{}
)

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg)).
		Background(lipgloss.Color(c.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.WarningFg)).
		Background(lipgloss.Color(c.WarningBg)).
		Padding(0, 1)

	roleColors = map[models.Role]string{
		models.RoleFreelancer: c.Freelancer,
		models.RoleRecruiter:  c.Recruiter,
		models.RoleAdmin:      c.Admin,
		models.RoleValidator:  c.Validator,
	}
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	if hexColor == "" {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderUser formats one user as a list line
// Format: "[id] First Last <email> role ★★★★☆"
func RenderUser(u models.User) string {
	line := fmt.Sprintf("[%d] %s %s %s",
		u.ID,
		TitleStyle.Render(u.FullName()),
		SubtitleStyle.Render("<"+u.Email+">"),
		ColoredText(string(u.Role), roleColors[u.Role]),
	)
	if u.ShowsRating() {
		line += " " + u.Stars()
	}
	return line
}

// RenderProject formats one project as a list line
// Format: "[id] Title ($25/h, open) by Owner - skills"
func RenderProject(p models.Project) string {
	line := fmt.Sprintf("[%d] %s %s by %s",
		p.ID,
		TitleStyle.Render(p.Title),
		SubtitleStyle.Render(fmt.Sprintf("($%s/h, %s)", p.PricePerHour, p.Status)),
		p.OwnerName(),
	)
	if len(p.Skills) > 0 {
		line += " - " + ValueStyle.Render(strings.Join(p.Skills, ", "))
	}
	return line
}
