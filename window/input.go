package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/ui"
)

// input is the per-frame input snapshot consumed by apply
type input struct {
	keys    []ebiten.Key // pressed this frame
	wheel   float64
	cursorX int
	cursorY int
	pressed bool // left button went down this frame
	held    bool
}

// pollInput reads ebiten's input state for the current tick
func pollInput() input {
	var in input
	in.keys = inpututil.AppendJustPressedKeys(nil)
	_, in.wheel = ebiten.Wheel()
	in.cursorX, in.cursorY = ebiten.CursorPosition()
	in.pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.held = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return in
}

// apply handles one snapshot and returns false when the user asked to quit
func (g *Game) apply(in input) bool {
	for _, k := range in.keys {
		if !g.handleKey(k) {
			return false
		}
	}

	switch {
	case in.wheel > 0:
		g.cam.Zoom(1 / parameter.OrbitZoomFactor)
	case in.wheel < 0:
		g.cam.Zoom(parameter.OrbitZoomFactor)
	}

	g.handlePointer(in)
	return true
}

func (g *Game) handleKey(k ebiten.Key) bool {
	switch {
	case k == ebiten.KeyEscape || k == ebiten.KeyQ:
		return false
	case k >= ebiten.KeyDigit1 && k <= ebiten.KeyDigit9:
		g.ctrl.SelectIndex(int(k - ebiten.KeyDigit1))
	case k == ebiten.KeyT:
		g.ctrl.NextTheme()
	case k == ebiten.KeySpace || k == ebiten.KeyA:
		g.ctrl.ToggleAnimation()
	case k == ebiten.KeyM:
		if g.beat != nil {
			g.panel.muted = g.beat.Toggle()
		}
	case k == ebiten.KeyEqual || k == ebiten.KeyNumpadAdd:
		g.cam.Zoom(1 / parameter.OrbitZoomFactor)
	case k == ebiten.KeyMinus || k == ebiten.KeyNumpadSubtract:
		g.cam.Zoom(parameter.OrbitZoomFactor)
	case k == ebiten.KeyArrowLeft:
		g.cam.Rotate(-parameter.OrbitKeyStep, 0)
	case k == ebiten.KeyArrowRight:
		g.cam.Rotate(parameter.OrbitKeyStep, 0)
	case k == ebiten.KeyArrowUp:
		g.cam.Rotate(0, -parameter.OrbitKeyStep)
	case k == ebiten.KeyArrowDown:
		g.cam.Rotate(0, parameter.OrbitKeyStep)
	}
	return true
}

func (g *Game) handlePointer(in input) {
	if in.pressed {
		switch a := g.panel.hitTest(in.cursorX, in.cursorY); a.Kind {
		case ui.ActionTheme:
			g.ctrl.SetTheme(a.Key)
		case ui.ActionToggleAnimation:
			g.ctrl.ToggleAnimation()
		default:
			g.dragging = true
			g.dragX, g.dragY = in.cursorX, in.cursorY
		}
		return
	}

	if !in.held {
		g.dragging = false
		return
	}
	if !g.dragging {
		return
	}
	dx := float64(in.cursorX - g.dragX)
	dy := float64(in.cursorY - g.dragY)
	if dx != 0 || dy != 0 {
		g.cam.Rotate(-dx*parameter.OrbitWindowDragStep, -dy*parameter.OrbitWindowDragStep)
	}
	g.dragX, g.dragY = in.cursorX, in.cursorY
}
