package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << 0
	AttrDim     Attr = 1 << 1
	AttrReverse Attr = 1 << 2
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides frame-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns the color capability used for output
	ColorMode() ColorMode

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Sync forces full redraw
	Sync()

	// PollEvent blocks until next input event, EventClosed after Fini
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)

	// SetMouseEnabled enables/disables mouse event reporting
	SetMouseEnabled(enabled bool)
}

// screenTerminal implements Terminal on a tcell.Screen
type screenTerminal struct {
	screen tcell.Screen
	mode   ColorMode
	mouse  mouseTracker

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on the process tty
func New(mode ColorMode) (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(s, mode), nil
}

// NewWithScreen wraps an existing screen, tests pass a tcell simulation screen
func NewWithScreen(s tcell.Screen, mode ColorMode) Terminal {
	return &screenTerminal{screen: s, mode: mode}
}

func (t *screenTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *screenTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()
}

func (t *screenTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *screenTerminal) ColorMode() ColorMode {
	return t.mode
}

func (t *screenTerminal) color(c RGB) tcell.Color {
	if t.mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *screenTerminal) style(c Cell) tcell.Style {
	st := tcell.StyleDefault.Foreground(t.color(c.Fg)).Background(t.color(c.Bg))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func (t *screenTerminal) Flush(cells []Cell, width, height int) {
	sw, sh := t.screen.Size()
	w, h := min(width, sw), min(height, sh)
	for y := 0; y < h; y++ {
		row := cells[y*width : y*width+w]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, t.style(c))
		}
	}
	t.screen.Show()
}

func (t *screenTerminal) Sync() {
	t.screen.Sync()
}

func (t *screenTerminal) PollEvent() Event {
	for {
		ev, ok := t.mouse.translateEvent(t.screen.PollEvent())
		if ok {
			return ev
		}
	}
}

func (t *screenTerminal) PostEvent(ev Event) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

func (t *screenTerminal) SetMouseEnabled(enabled bool) {
	if enabled {
		t.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	} else {
		t.screen.DisableMouse()
	}
}
