package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateKeyMap returns the keymap shared by every console form.
// shift+enter adds a newline in text areas next to the default alt+enter
// and ctrl+j. Quitting is left to the console, which closes the form on esc.
func CreateKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	keymap.Quit = key.NewBinding(key.WithDisabled())

	return keymap
}

func newForm(fields ...huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(CreateKeyMap()).
		WithShowHelp(true)
}
