package layers

const (
	// Dialog width as a fraction of the screen
	ModalWidthNumerator = 3
	ModalWidthDivisor   = 5

	ModalMinWidth = 44
	ModalMaxWidth = 90

	// ModalChromeWidth is border plus horizontal padding of a dialog box
	ModalChromeWidth = 6
)
