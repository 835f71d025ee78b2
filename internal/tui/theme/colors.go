// Package theme holds the active colors, set once at startup by Init
package theme

import "github.com/khedmalink/khedma/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Background string
	Subtle     string
	Normal     string
	Create     string
	Edit       string
	Delete     string
	SelectedFg string
	SelectedBg string
	InfoFg     string
	InfoBg     string
	WarningFg  string
	WarningBg  string
	ErrorFg    string
	ErrorBg    string
)

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Highlight = c.Accent
	Background = c.Background
	Subtle = c.Subtle
	Normal = c.Normal
	Create = c.Create
	Edit = c.Edit
	Delete = c.Delete
	SelectedFg = c.SelectedFg
	SelectedBg = c.SelectedBg
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
}
