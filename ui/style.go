package ui

import "github.com/lixenwraith/heartglow/terminal"

// Style defines semantic colors for panel components
type Style struct {
	Bg       terminal.RGB
	Fg       terminal.RGB
	LabelBg  terminal.RGB
	FocusFg  terminal.RGB
	KeyFg    terminal.RGB
	HintFg   terminal.RGB
	Selected terminal.RGB
	Muted    terminal.RGB
}

// DefaultStyle provides reasonable defaults on a near-black panel
var DefaultStyle = Style{
	Bg:       terminal.RGB{R: 12, G: 10, B: 16},
	Fg:       terminal.RGB{R: 200, G: 200, B: 200},
	LabelBg:  terminal.RGB{R: 40, G: 36, B: 48},
	FocusFg:  terminal.RGB{R: 255, G: 255, B: 255},
	KeyFg:    terminal.RGB{R: 130, G: 130, B: 150},
	HintFg:   terminal.RGB{R: 110, G: 110, B: 125},
	Selected: terminal.RGB{R: 80, G: 200, B: 80},
	Muted:    terminal.RGB{R: 100, G: 100, B: 100},
}
