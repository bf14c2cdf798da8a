package ui

import (
	"strconv"

	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/render"
	"github.com/lixenwraith/heartglow/theme"
)

// ActionKind identifies what a click on the panel requests
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionTheme
	ActionToggleAnimation
)

// Action is the result of a panel hit test
type Action struct {
	Kind ActionKind
	Key  string // Theme key for ActionTheme
}

// panelHint lists keyboard controls after the checkbox
const panelHint = "t next  space anim  arrows orbit  +/- zoom  m mute  q quit"

// Panel is the bottom control strip: one button per theme and the animation checkbox
// It mirrors controller state through SetActive and SetAnimation
type Panel struct {
	themes  []*theme.Theme
	style   Style
	active  string
	animate bool
	muted   bool

	// Hit boxes from the last Draw, absolute cell coordinates
	themeSpans []Span
	toggleSpan Span
}

// NewPanel creates a panel with one button per registry theme, in registry order
func NewPanel(reg *theme.Registry) *Panel {
	p := &Panel{style: DefaultStyle, animate: true}
	for i := 0; i < reg.Len(); i++ {
		if th, ok := reg.At(i); ok {
			p.themes = append(p.themes, th)
		}
	}
	return p
}

// SetActive marks key as the only active theme button, unknown keys clear the mark
func (p *Panel) SetActive(key string) { p.active = key }

// SetAnimation sets the checkbox state
func (p *Panel) SetAnimation(enabled bool) { p.animate = enabled }

// SetMuted shows the audio state in the hint row
func (p *Panel) SetMuted(muted bool) { p.muted = muted }

// Active returns the highlighted theme key
func (p *Panel) Active() string { return p.active }

// Animation returns the checkbox state
func (p *Panel) Animation() bool { return p.animate }

// Draw renders the panel into the last PanelRows rows of buf
func (p *Panel) Draw(buf *render.Buffer) {
	h := min(parameter.PanelRows, buf.Height())
	r := NewRegion(buf.Cells(), buf.Width(), 0, buf.Height()-h, buf.Width(), h)
	r.Fill(p.style.Bg)

	buttons := make([]Button, len(p.themes))
	for i, th := range p.themes {
		buttons[i] = Button{
			Label:   th.Name,
			Key:     strconv.Itoa(i + 1),
			Focused: th.Key == p.active,
			Accent:  render.Lerp(p.style.LabelBg, render.FromColor(th.Color(0)), 0.6),
		}
	}
	p.themeSpans = r.ButtonBar(0, buttons, parameter.PanelButtonGap, p.style)

	p.toggleSpan = r.Checkbox(1, 1, p.animate, parameter.PanelToggleLabel, p.style)
	x := 1 + p.toggleSpan.W + 2
	if p.muted {
		x = r.Text(x, 1, "[muted] ", p.style.Muted, p.style.Bg, 0)
	}
	r.Text(x, 1, panelHint, p.style.HintFg, p.style.Bg, 0)
}

// HitTest maps an absolute cell coordinate to the action under it
// Uses hit boxes from the most recent Draw
func (p *Panel) HitTest(x, y int) Action {
	for i, s := range p.themeSpans {
		if s.W > 0 && s.Contains(x, y) {
			return Action{Kind: ActionTheme, Key: p.themes[i].Key}
		}
	}
	if p.toggleSpan.W > 0 && p.toggleSpan.Contains(x, y) {
		return Action{Kind: ActionToggleAnimation}
	}
	return Action{}
}
