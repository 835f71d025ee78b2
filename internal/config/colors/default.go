package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Background
		Background:      "#1C1C1C",
		PanelBackground: "#262626",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		// Tables
		PanelBorder:  "#5F87D7",
		HeaderFg:     "#D75FD7",
		SelectedFg:   "#FFFFFF",
		SelectedBg:   "#3A3A3A",
		RatingFg:     "#FFD700",
		SearchPrompt: "#874BFD",

		// Roles
		Freelancer: "#5FD7AF",
		Recruiter:  "#5F87D7",
		Admin:      "#D75FD7",
		Validator:  "#FFAF5F",

		// Project statuses
		StatusOpen:    "#5FD75F",
		StatusPending: "#FFD700",
		StatusClosed:  "#878787",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		// Status bar
		StatusBarBg:   "#874BFD", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}
