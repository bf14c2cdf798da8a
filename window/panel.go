package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/theme"
	"github.com/lixenwraith/heartglow/ui"
)

// debugGlyphW/H are the ebitenutil debug font cell size
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

var (
	panelBg       = color.RGBA{R: 12, G: 10, B: 16, A: 200}
	buttonIdle    = color.RGBA{R: 40, G: 36, B: 48, A: 255}
	buttonBorder  = color.RGBA{R: 130, G: 130, B: 150, A: 255}
	buttonActive  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	checkboxCheck = color.RGBA{R: 80, G: 200, B: 80, A: 255}
)

// rect is a pixel rectangle
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// panel is the window control strip: one button per theme and the animation checkbox
type panel struct {
	themes   []*theme.Theme
	active   string
	animate  bool
	muted    bool
	buttons  []rect
	checkbox rect
	height   int
}

func newPanel(reg *theme.Registry) *panel {
	p := &panel{}
	for i := 0; i < reg.Len(); i++ {
		if th, ok := reg.At(i); ok {
			p.themes = append(p.themes, th)
		}
	}
	return p
}

// SetActive marks the button for key as the single active one
func (p *panel) SetActive(key string) { p.active = key }

// SetAnimation sets the checkbox state
func (p *panel) SetAnimation(enabled bool) { p.animate = enabled }

// layout places the strip along the bottom edge of a w x h screen
// Buttons that would overflow the width get an empty rect
func (p *panel) layout(w, h int) {
	m := parameter.WindowPanelMargin
	p.height = parameter.WindowButtonHeight + 2*m
	y := h - m - parameter.WindowButtonHeight

	p.buttons = make([]rect, len(p.themes))
	x := m
	for i := range p.themes {
		if x+parameter.WindowButtonWidth > w-m {
			x = w
			break
		}
		p.buttons[i] = rect{x, y, parameter.WindowButtonWidth, parameter.WindowButtonHeight}
		x += parameter.WindowButtonWidth + parameter.WindowButtonGap
	}

	cs := parameter.WindowCheckboxSize
	labelW := (len(parameter.PanelToggleLabel) + 1) * debugGlyphW
	if x+cs+labelW > w-m {
		p.checkbox = rect{}
		return
	}
	// The label is part of the click target
	p.checkbox = rect{x, y + (parameter.WindowButtonHeight-cs)/2, cs + labelW, cs}
}

// hitTest maps a pixel to a panel action
func (p *panel) hitTest(x, y int) ui.Action {
	for i, r := range p.buttons {
		if r.w > 0 && r.contains(x, y) {
			return ui.Action{Kind: ui.ActionTheme, Key: p.themes[i].Key}
		}
	}
	if p.checkbox.w > 0 && p.checkbox.contains(x, y) {
		return ui.Action{Kind: ui.ActionToggleAnimation}
	}
	return ui.Action{}
}

func (p *panel) draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(h-p.height), float32(w), float32(p.height), panelBg, false)

	for i, r := range p.buttons {
		if r.w == 0 {
			continue
		}
		th := p.themes[i]
		fill := color.Color(buttonIdle)
		border := color.Color(buttonBorder)
		if th.Key == p.active {
			fill = th.Color(0)
			border = buttonActive
		}
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), fill, false)
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, border, false)

		label := th.Name
		if fit := r.w/debugGlyphW - 1; len(label) > fit {
			label = label[:fit]
		}
		tx := r.x + (r.w-len(label)*debugGlyphW)/2
		ty := r.y + (r.h-debugGlyphH)/2
		ebitenutil.DebugPrintAt(screen, label, tx, ty)
	}

	if c := p.checkbox; c.w > 0 {
		cs := parameter.WindowCheckboxSize
		vector.StrokeRect(screen, float32(c.x), float32(c.y), float32(cs), float32(cs), 1, buttonBorder, false)
		if p.animate {
			vector.DrawFilledRect(screen, float32(c.x+4), float32(c.y+4), float32(cs-8), float32(cs-8), checkboxCheck, false)
		}
		label := parameter.PanelToggleLabel
		if p.muted {
			label += " [muted]"
		}
		ebitenutil.DebugPrintAt(screen, label, c.x+cs+debugGlyphW, c.y+(cs-debugGlyphH)/2)
	}
}
