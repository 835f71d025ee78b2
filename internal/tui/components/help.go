package components

import (
	"fmt"
	"strings"

	"github.com/khedmalink/khedma/internal/config"
)

// RenderHelp lists the dashboard key bindings
func RenderHelp(keys config.KeyMappings) string {
	rows := [][2]string{
		{keys.NextTab, "switch between users and projects"},
		{keys.NextItem + "/" + keys.PrevItem, "move selection"},
		{keys.Search, "search (enter keeps, esc clears)"},
		{keys.CycleRole, "cycle role filter (users)"},
		{keys.Create, "create user or project"},
		{keys.Edit, "edit user field or project status"},
		{keys.Delete, "delete selected"},
		{keys.Refresh, "reload lists"},
		{keys.Logout, "log out"},
		{keys.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-10s %s\n", r[0], r[1])
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("press any key to close"))
	return HelpBoxStyle.Render(b.String())
}
