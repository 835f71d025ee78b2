package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Background:      "#121212",
		PanelBackground: "#1C1C1C",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		PanelBorder:  "#FFFFFF",
		HeaderFg:     "#FFFFFF",
		SelectedFg:   "#121212",
		SelectedBg:   "#D0D0D0",
		RatingFg:     "#FFFFFF",
		SearchPrompt: "#FFFFFF",

		Freelancer: "#D0D0D0",
		Recruiter:  "#D0D0D0",
		Admin:      "#FFFFFF",
		Validator:  "#D0D0D0",

		StatusOpen:    "#FFFFFF",
		StatusPending: "#D0D0D0",
		StatusClosed:  "#585858",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",

		StatusBarBg:   "#FFFFFF",
		StatusBarText: "#121212",
	}
}
