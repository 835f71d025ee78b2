package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	Background      string `yaml:"background"`
	PanelBackground string `yaml:"panel_background"`

	// Semantic colors
	Create string `yaml:"create"` // creation modals
	Edit   string `yaml:"edit"`   // edit modals
	Delete string `yaml:"delete"` // delete confirmations

	// Dashboard tables
	PanelBorder  string `yaml:"panel_border"`
	HeaderFg     string `yaml:"header_fg"`
	SelectedFg   string `yaml:"selected_fg"`
	SelectedBg   string `yaml:"selected_bg"`
	RatingFg     string `yaml:"rating_fg"`
	SearchPrompt string `yaml:"search_prompt"`

	// Role badges
	Freelancer string `yaml:"freelancer"`
	Recruiter  string `yaml:"recruiter"`
	Admin      string `yaml:"admin"`
	Validator  string `yaml:"validator"`

	// Project status badges
	StatusOpen    string `yaml:"status_open"`
	StatusPending string `yaml:"status_pending"`
	StatusClosed  string `yaml:"status_closed"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields pairs every color slot of c with the same slot of other
func (c *ColorScheme) fields(other *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &other.Accent},
		{&c.Background, &other.Background},
		{&c.PanelBackground, &other.PanelBackground},
		{&c.Create, &other.Create},
		{&c.Edit, &other.Edit},
		{&c.Delete, &other.Delete},
		{&c.PanelBorder, &other.PanelBorder},
		{&c.HeaderFg, &other.HeaderFg},
		{&c.SelectedFg, &other.SelectedFg},
		{&c.SelectedBg, &other.SelectedBg},
		{&c.RatingFg, &other.RatingFg},
		{&c.SearchPrompt, &other.SearchPrompt},
		{&c.Freelancer, &other.Freelancer},
		{&c.Recruiter, &other.Recruiter},
		{&c.Admin, &other.Admin},
		{&c.Validator, &other.Validator},
		{&c.StatusOpen, &other.StatusOpen},
		{&c.StatusPending, &other.StatusPending},
		{&c.StatusClosed, &other.StatusClosed},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.InfoFg, &other.InfoFg},
		{&c.InfoBg, &other.InfoBg},
		{&c.WarningFg, &other.WarningFg},
		{&c.WarningBg, &other.WarningBg},
		{&c.ErrorFg, &other.ErrorFg},
		{&c.ErrorBg, &other.ErrorBg},
		{&c.StatusBarBg, &other.StatusBarBg},
		{&c.StatusBarText, &other.StatusBarText},
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	for _, pair := range c.fields(preset) {
		if *pair[0] == "" {
			*pair[0] = *pair[1]
		}
	}
}

// MergeFrom overwrites colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, pair := range c.fields(&other) {
		if *pair[1] != "" {
			*pair[0] = *pair[1]
		}
	}
}
