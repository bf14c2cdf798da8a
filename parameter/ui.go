package parameter

// Control panel layout, in terminal cells
const (
	// PanelRows is the number of rows reserved at the bottom of the screen
	PanelRows = 2

	// PanelButtonGap is the spacing between theme buttons
	PanelButtonGap = 1

	// PanelToggleLabel labels the animation checkbox
	PanelToggleLabel = "Animation"
)

// Window control panel, in pixels
const (
	WindowButtonWidth  = 96
	WindowButtonHeight = 28
	WindowButtonGap    = 8
	WindowPanelMargin  = 16
	WindowCheckboxSize = 16
)
