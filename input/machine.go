package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine translates tcell events into intents
// Mouse presses are edge-triggered: holding the button and dragging does not repeat clicks
type Machine struct {
	keys    KeyMap
	buttons tcell.ButtonMask
}

// NewMachine creates a translator with the given bindings, nil uses the defaults
func NewMachine(keys KeyMap) *Machine {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Machine{keys: keys}
}

// Process converts one event, nil for events with no meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		if it, ok := m.keys[ev.Rune()]; ok && it != IntentNone {
			return &Intent{Type: it}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	prev := m.buttons
	m.buttons = ev.Buttons()

	if m.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
		x, y := ev.Position()
		return &Intent{Type: IntentClick, X: x, Y: y}
	}
	return nil
}

// Reset forgets the held button state, used after focus or resize glitches
func (m *Machine) Reset() {
	m.buttons = tcell.ButtonNone
}
