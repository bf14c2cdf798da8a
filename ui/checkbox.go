package ui

import "github.com/lixenwraith/heartglow/terminal"

// Checkbox draws "[x] label" at (x, y) and returns its span
func (r Region) Checkbox(x, y int, checked bool, label string, style Style) Span {
	if x < 0 || x+2 >= r.W || y < 0 || y >= r.H {
		return Span{}
	}
	mark, markFg := ' ', style.Muted
	if checked {
		mark, markFg = 'x', style.Selected
	}
	r.Cell(x, y, '[', style.Fg, style.Bg, terminal.AttrNone)
	r.Cell(x+1, y, mark, markFg, style.Bg, terminal.AttrBold)
	r.Cell(x+2, y, ']', style.Fg, style.Bg, terminal.AttrNone)
	end := r.Text(x+4, y, label, style.Fg, style.Bg, terminal.AttrNone)
	return Span{X: r.X + x, Y: r.Y + y, W: min(end, r.W) - x}
}
