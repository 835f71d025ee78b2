package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Landing
	OpenLogin string `yaml:"open_login"`

	// Dashboard navigation
	NextTab  string `yaml:"next_tab"`
	PrevItem string `yaml:"prev_item"`
	NextItem string `yaml:"next_item"`
	Search   string `yaml:"search"`
	CycleRole string `yaml:"cycle_role"`

	// Mutations
	Create string `yaml:"create"`
	Edit   string `yaml:"edit"`
	Delete string `yaml:"delete"`

	// Other
	Refresh  string `yaml:"refresh"`
	Logout   string `yaml:"logout"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		OpenLogin: "a",

		NextTab:   "tab",
		PrevItem:  "k",
		NextItem:  "j",
		Search:    "/",
		CycleRole: "f",

		Create: "n",
		Edit:   "e",
		Delete: "d",

		Refresh:  "r",
		Logout:   "L",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}

	fill(&k.OpenLogin, defaults.OpenLogin)
	fill(&k.NextTab, defaults.NextTab)
	fill(&k.PrevItem, defaults.PrevItem)
	fill(&k.NextItem, defaults.NextItem)
	fill(&k.Search, defaults.Search)
	fill(&k.CycleRole, defaults.CycleRole)
	fill(&k.Create, defaults.Create)
	fill(&k.Edit, defaults.Edit)
	fill(&k.Delete, defaults.Delete)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.Logout, defaults.Logout)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
