package terminal

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventInterrupt // Synthetic event from PostEvent
	EventClosed    // Screen finalized, no further events
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlC
)

// Modifier is a bitmask of held modifier keys
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int // For EventResize
	Height    int // For EventResize

	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction

	// Payload carries PostEvent data
	Payload any
}

var keyMap = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyCtrlC:      KeyCtrlC,
}

func translateModifiers(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	return out
}

// mouseTracker derives press/release/drag from tcell's button-state reports
type mouseTracker struct {
	held MouseButton
}

func buttonOf(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.WheelUp != 0:
		return MouseBtnWheelUp
	case mask&tcell.WheelDown != 0:
		return MouseBtnWheelDown
	case mask&tcell.Button1 != 0:
		return MouseBtnLeft
	case mask&tcell.Button3 != 0:
		return MouseBtnMiddle
	case mask&tcell.Button2 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}

func (m *mouseTracker) translate(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	out := Event{
		Type:      EventMouse,
		MouseX:    x,
		MouseY:    y,
		Modifiers: translateModifiers(ev.Modifiers()),
	}

	btn := buttonOf(ev.Buttons())
	switch {
	case btn == MouseBtnWheelUp || btn == MouseBtnWheelDown:
		out.MouseBtn = btn
		out.MouseAction = MouseActionPress
	case btn == MouseBtnNone && m.held != MouseBtnNone:
		out.MouseBtn = m.held
		out.MouseAction = MouseActionRelease
		m.held = MouseBtnNone
	case btn == MouseBtnNone:
		out.MouseAction = MouseActionMove
	case btn == m.held:
		out.MouseBtn = btn
		out.MouseAction = MouseActionDrag
	default:
		out.MouseBtn = btn
		out.MouseAction = MouseActionPress
		m.held = btn
	}
	return out
}

// translate converts a tcell event, nil means the screen was finalized
func (m *mouseTracker) translateEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case nil:
		return Event{Type: EventClosed}, true
	case *tcell.EventKey:
		out := Event{Type: EventKey, Modifiers: translateModifiers(e.Modifiers())}
		if e.Key() == tcell.KeyRune {
			out.Key = KeyRune
			out.Rune = e.Rune()
			return out, true
		}
		k, ok := keyMap[e.Key()]
		if !ok {
			return Event{}, false
		}
		out.Key = k
		return out, true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventMouse:
		return m.translate(e), true
	case *tcell.EventInterrupt:
		if posted, ok := e.Data().(Event); ok {
			return posted, true
		}
		return Event{Type: EventInterrupt, Payload: e.Data()}, true
	}
	return Event{}, false
}
