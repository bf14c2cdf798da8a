package engine

import (
	"github.com/lixenwraith/heartglow/parameter"
	"github.com/lixenwraith/heartglow/terminal"
	"github.com/lixenwraith/heartglow/ui"
)

// HandleEvent applies one input event and returns false when the user asked to quit
func (e *Engine) HandleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventResize:
		e.Resize(ev.Width, ev.Height)
		e.term.Sync()
	case terminal.EventKey:
		return e.handleKey(ev)
	case terminal.EventMouse:
		e.handleMouse(ev)
	}
	return true
}

func (e *Engine) handleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return false
	case terminal.KeyLeft:
		e.cam.Rotate(-parameter.OrbitKeyStep, 0)
	case terminal.KeyRight:
		e.cam.Rotate(parameter.OrbitKeyStep, 0)
	case terminal.KeyUp:
		e.cam.Rotate(0, -parameter.OrbitKeyStep)
	case terminal.KeyDown:
		e.cam.Rotate(0, parameter.OrbitKeyStep)
	case terminal.KeyRune:
		return e.handleRune(ev.Rune)
	}
	return true
}

func (e *Engine) handleRune(r rune) bool {
	switch {
	case r >= '1' && r <= '9':
		e.ctrl.SelectIndex(int(r - '1'))
	case r == 'q' || r == 'Q':
		return false
	case r == 't' || r == 'T':
		e.ctrl.NextTheme()
	case r == ' ' || r == 'a' || r == 'A':
		e.ctrl.ToggleAnimation()
	case r == '+' || r == '=':
		e.cam.Zoom(1 / parameter.OrbitZoomFactor)
	case r == '-' || r == '_':
		e.cam.Zoom(parameter.OrbitZoomFactor)
	case r == 'm' || r == 'M':
		if e.beat != nil {
			e.panel.SetMuted(e.beat.Toggle())
		}
	}
	return true
}

func (e *Engine) handleMouse(ev terminal.Event) {
	switch ev.MouseBtn {
	case terminal.MouseBtnWheelUp:
		e.cam.Zoom(1 / parameter.OrbitZoomFactor)
		return
	case terminal.MouseBtnWheelDown:
		e.cam.Zoom(parameter.OrbitZoomFactor)
		return
	case terminal.MouseBtnLeft:
	default:
		return
	}

	switch ev.MouseAction {
	case terminal.MouseActionPress:
		switch a := e.panel.HitTest(ev.MouseX, ev.MouseY); a.Kind {
		case ui.ActionTheme:
			e.ctrl.SetTheme(a.Key)
		case ui.ActionToggleAnimation:
			e.ctrl.ToggleAnimation()
		default:
			e.dragging = true
			e.dragX, e.dragY = ev.MouseX, ev.MouseY
		}
	case terminal.MouseActionDrag:
		if !e.dragging {
			return
		}
		// Cells are twice as tall as wide, so vertical drags cover two pixel rows
		dx := float64(ev.MouseX - e.dragX)
		dy := float64(ev.MouseY-e.dragY) * 2
		e.cam.Rotate(-dx*parameter.OrbitDragStep, -dy*parameter.OrbitDragStep)
		e.dragX, e.dragY = ev.MouseX, ev.MouseY
	case terminal.MouseActionRelease:
		e.dragging = false
	}
}
