package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/khedmalink/khedma/internal/models"
)

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func cell(s string, width int, style lipgloss.Style) string {
	return style.Width(width).MaxWidth(width).Render(truncate(s, width-1))
}

func flexWidth(total int, fixed ...int) int {
	used := tablePaddingCols
	for _, w := range fixed {
		used += w
	}
	return max(total-used, minFlexWidth)
}

// splitFlex shares the flexible width between two columns, giving the
// first one share percent of it
func splitFlex(flex, share int) (int, int) {
	first := max(flex*share/100, minFlexWidth/2)
	return first, max(flex-first, minFlexWidth/2)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// TableProps is shared by both tables
type TableProps struct {
	Width    int
	Height   int
	Selected int
}

// visibleWindow returns the [start, end) rows to draw so the selection
// stays on screen
func visibleWindow(count, selected, height int) (int, int) {
	if height <= 0 || count <= height {
		return 0, count
	}
	start := max(selected-height+1, 0)
	return start, min(start+height, count)
}

// RenderUserTable renders users as rows: name, email, role, phone, rating, link
func RenderUserTable(users []models.User, props TableProps) string {
	emailWidth, linkWidth := splitFlex(flexWidth(props.Width, userNameWidth, userRoleWidth, userPhoneWidth, userRatingWidth), 55)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Name", userNameWidth, lipgloss.NewStyle()),
		cell("Email", emailWidth, lipgloss.NewStyle()),
		cell("Role", userRoleWidth, lipgloss.NewStyle()),
		cell("Phone", userPhoneWidth, lipgloss.NewStyle()),
		cell("Rating", userRatingWidth, lipgloss.NewStyle()),
		cell("Link", linkWidth, lipgloss.NewStyle()),
	)
	lines := []string{HeaderStyle.Render(header)}

	if len(users) == 0 {
		lines = append(lines, SubtleStyle.Render("No users match."))
		return strings.Join(lines, "\n")
	}

	start, end := visibleWindow(len(users), props.Selected, props.Height-2)
	for i := start; i < end; i++ {
		u := users[i]
		base := RowStyle
		if i == props.Selected {
			base = SelectedRowStyle
		}

		rating := ""
		if u.ShowsRating() {
			rating = u.Stars()
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			cell(u.FullName(), userNameWidth, base),
			cell(u.Email, emailWidth, base),
			cell(string(u.Role), userRoleWidth, base.Inherit(RoleStyle(u.Role))),
			cell(orDash(u.Phone), userPhoneWidth, base),
			cell(rating, userRatingWidth, base.Inherit(RatingStyle)),
			cell(orDash(u.Link), linkWidth, base),
		)
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

// RenderProjectTable renders projects as rows: title, description, owner,
// price, status, skills
func RenderProjectTable(projects []models.Project, props TableProps) string {
	descWidth, skillsWidth := splitFlex(flexWidth(props.Width, projTitleWidth, projOwnerWidth, projPriceWidth, projStatusWidth), 60)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Title", projTitleWidth, lipgloss.NewStyle()),
		cell("Description", descWidth, lipgloss.NewStyle()),
		cell("Recruiter", projOwnerWidth, lipgloss.NewStyle()),
		cell("Price/h", projPriceWidth, lipgloss.NewStyle()),
		cell("Status", projStatusWidth, lipgloss.NewStyle()),
		cell("Skills", skillsWidth, lipgloss.NewStyle()),
	)
	lines := []string{HeaderStyle.Render(header)}

	if len(projects) == 0 {
		lines = append(lines, SubtleStyle.Render("No projects match."))
		return strings.Join(lines, "\n")
	}

	start, end := visibleWindow(len(projects), props.Selected, props.Height-2)
	for i := start; i < end; i++ {
		p := projects[i]
		base := RowStyle
		if i == props.Selected {
			base = SelectedRowStyle
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			cell(p.Title, projTitleWidth, base),
			cell(orDash(p.Description), descWidth, base.Inherit(SubtleStyle)),
			cell(p.OwnerName(), projOwnerWidth, base),
			cell("$"+string(p.PricePerHour), projPriceWidth, base),
			cell(string(p.Status), projStatusWidth, base.Inherit(StatusStyle(p.Status))),
			cell(strings.Join(p.Skills, ", "), skillsWidth, base),
		)
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}
