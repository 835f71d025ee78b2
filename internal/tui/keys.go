package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/khedmalink/khedma/internal/config"
)

// keyMap holds the console's bindings, built from the user's key mappings.
// Arrow keys and enter are always bound next to the configured keys.
type keyMap struct {
	OpenLogin key.Binding
	NextTab   key.Binding
	PrevItem  key.Binding
	NextItem  key.Binding
	Search    key.Binding
	CycleRole key.Binding
	Create    key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	Logout    key.Binding
	ShowHelp  key.Binding
	Quit      key.Binding

	Confirm key.Binding
	Cancel  key.Binding
	Back    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		OpenLogin: key.NewBinding(key.WithKeys(km.OpenLogin, "enter"), key.WithHelp(km.OpenLogin, "admin login")),
		NextTab:   key.NewBinding(key.WithKeys(km.NextTab), key.WithHelp(km.NextTab, "switch tab")),
		PrevItem:  key.NewBinding(key.WithKeys(km.PrevItem, "up"), key.WithHelp(km.PrevItem, "up")),
		NextItem:  key.NewBinding(key.WithKeys(km.NextItem, "down"), key.WithHelp(km.NextItem, "down")),
		Search:    key.NewBinding(key.WithKeys(km.Search), key.WithHelp(km.Search, "search")),
		CycleRole: key.NewBinding(key.WithKeys(km.CycleRole), key.WithHelp(km.CycleRole, "role filter")),
		Create:    key.NewBinding(key.WithKeys(km.Create), key.WithHelp(km.Create, "create")),
		Edit:      key.NewBinding(key.WithKeys(km.Edit), key.WithHelp(km.Edit, "edit")),
		Delete:    key.NewBinding(key.WithKeys(km.Delete), key.WithHelp(km.Delete, "delete")),
		Refresh:   key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Logout:    key.NewBinding(key.WithKeys(km.Logout), key.WithHelp(km.Logout, "log out")),
		ShowHelp:  key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:      key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),

		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
