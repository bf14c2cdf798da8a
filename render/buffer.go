package render

import (
	"github.com/lixenwraith/heartglow/terminal"
)

// Buffer is the cell frame handed to the terminal, scene rows on top and panel rows below
// Backed by []terminal.Cell so the terminal flushes it without copying
type Buffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

var emptyCell = terminal.Cell{Rune: ' ', Fg: RGBWhite, Bg: RGBBlack, Attrs: terminal.AttrNone}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *Buffer) Height() int { return b.height }

// Cell returns the cell at (x, y), the zero cell when out of bounds
func (b *Buffer) Cell(x, y int) terminal.Cell {
	if !b.inBounds(x, y) {
		return terminal.Cell{}
	}
	return b.cells[y*b.width+x]
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *Buffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bg = bg
	dst.Attrs = terminal.AttrNone
}

// FlushToTerminal writes render buffer to terminal
func (b *Buffer) FlushToTerminal(term terminal.Terminal) {
	term.Flush(b.cells, b.width, b.height)
}

// Cells exposes the row-major cell slice for region-based drawing
func (b *Buffer) Cells() []terminal.Cell {
	return b.cells
}
