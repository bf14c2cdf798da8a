package render

import (
	"testing"

	"github.com/lixenwraith/heartglow/terminal"
)

func TestBufferSetWithBg(t *testing.T) {
	b := NewBuffer(4, 2)

	b.SetWithBg(1, 1, 'a', RGB{10, 10, 10}, RGB{100, 0, 0})
	if c := b.Cell(1, 1); c.Rune != 'a' || c.Fg != (RGB{10, 10, 10}) || c.Bg != (RGB{100, 0, 0}) {
		t.Errorf("cell = %+v", c)
	}
	if c := b.Cell(0, 0); c != emptyCell {
		t.Errorf("untouched cell = %+v", c)
	}

	b.SetWithBg(-1, 0, 'z', RGBWhite, RGBWhite)
	b.SetWithBg(4, 0, 'z', RGBWhite, RGBWhite)
	if got := b.Cell(4, 0); got != (terminal.Cell{}) {
		t.Errorf("out of bounds read = %+v", got)
	}
	for x := 0; x < 4; x++ {
		if c := b.Cell(x, 0); c != emptyCell {
			t.Errorf("out of bounds write leaked into (%d,0): %+v", x, c)
		}
	}
}

func TestBufferResizeClears(t *testing.T) {
	b := NewBuffer(3, 3)
	b.SetWithBg(2, 2, 'q', RGBWhite, RGBWhite)
	b.Resize(2, 2)
	if b.Width() != 2 || b.Height() != 2 {
		t.Fatalf("size = %dx%d", b.Width(), b.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c := b.Cell(x, y); c != emptyCell {
				t.Errorf("cell (%d,%d) = %+v after resize", x, y, c)
			}
		}
	}
	b.Resize(-1, 5)
	if b.Width() != 0 || len(b.cells) != 0 {
		t.Errorf("negative width not clamped")
	}
}
