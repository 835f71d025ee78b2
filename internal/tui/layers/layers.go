// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := CenterOffset(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CenterOffset returns the top-left corner that centers a w×h box, never
// negative
func CenterOffset(w, h, screenWidth, screenHeight int) (int, int) {
	x := (screenWidth - w) / 2
	y := (screenHeight - h) / 2
	return max(x, 0), max(y, 0)
}

// ModalWidth is the inner form width for a dialog on a screen this wide
func ModalWidth(screenWidth int) int {
	width := screenWidth * ModalWidthNumerator / ModalWidthDivisor
	width = min(max(width, ModalMinWidth), ModalMaxWidth)
	// Never wider than the screen itself
	width = min(width, max(screenWidth-ModalChromeWidth, 1))
	return width
}

// Compose stacks base and every non-nil overlay into one string
func Compose(base string, overlays ...*lipgloss.Layer) string {
	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, o := range overlays {
		if o != nil {
			stack = append(stack, o)
		}
	}
	return lipgloss.NewCanvas(stack...).Render()
}
