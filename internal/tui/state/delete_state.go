package state

import "fmt"

// DeleteTarget is the row awaiting delete confirmation
type DeleteTarget struct {
	Tab   Tab
	ID    int
	Label string
}

// Prompt is the inline confirmation text
func (d DeleteTarget) Prompt() string {
	kind := "user"
	if d.Tab == ProjectsTab {
		kind = "project"
	}
	return fmt.Sprintf("Delete %s '%s'? [y]es [n]o", kind, d.Label)
}
