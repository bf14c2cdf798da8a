package ui

import "github.com/lixenwraith/heartglow/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{Cells: cells, TotalW: totalW, X: x, Y: y, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	w = max(min(w, r.W-x), 0)
	h = max(min(h, r.H-y), 0)
	return Region{Cells: r.Cells, TotalW: r.TotalW, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Contains reports whether absolute (x, y) lies inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	if uint(absX) >= uint(r.TotalW) {
		return
	}
	idx := (r.Y+y)*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}

// Text writes s at (x, y) clipped to the region and returns the next x
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	for _, ch := range s {
		r.Cell(x, y, ch, fg, bg, attr)
		x++
	}
	return x
}

// RuneLen returns the number of runes in s
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
