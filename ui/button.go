package ui

import "github.com/lixenwraith/heartglow/terminal"

// Button defines a single button in a button bar
type Button struct {
	Label   string
	Key     string // Keyboard hint drawn before the label
	Focused bool
	Accent  terminal.RGB // Focused background, zero uses the style's label background
}

// Span is the absolute horizontal extent of a drawn button on row Y
type Span struct {
	X, Y, W int
}

// Contains reports whether absolute (x, y) hits the span
func (s Span) Contains(x, y int) bool {
	return y == s.Y && x >= s.X && x < s.X+s.W
}

// buttonWidth is the drawn width of a button including padding
func buttonWidth(b Button) int {
	w := RuneLen(b.Label) + 2
	if b.Key != "" {
		w += RuneLen(b.Key) + 1
	}
	return w
}

// ButtonBar renders a left-aligned row of buttons at row y and returns their spans
// Buttons that do not fit are skipped and have a zero-width span
func (r Region) ButtonBar(y int, buttons []Button, gap int, style Style) []Span {
	spans := make([]Span, len(buttons))
	if y < 0 || y >= r.H {
		return spans
	}
	if gap < 0 {
		gap = 0
	}

	x := 1
	for i, btn := range buttons {
		w := buttonWidth(btn)
		if x+w > r.W {
			break
		}

		fg, bg := style.Fg, style.LabelBg
		attr := terminal.AttrNone
		if btn.Focused {
			fg, attr = style.FocusFg, terminal.AttrBold
			if btn.Accent != (terminal.RGB{}) {
				bg = btn.Accent
			}
		}

		spans[i] = Span{X: r.X + x, Y: r.Y + y, W: w}
		cx := r.Text(x, y, " ", fg, bg, attr)
		if btn.Key != "" {
			cx = r.Text(cx, y, btn.Key, style.KeyFg, bg, terminal.AttrNone)
			cx = r.Text(cx, y, " ", fg, bg, attr)
		}
		cx = r.Text(cx, y, btn.Label, fg, bg, attr)
		r.Text(cx, y, " ", fg, bg, attr)

		x += w + gap
	}
	return spans
}
