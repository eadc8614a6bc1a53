// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/flightsim/internal/scene"
)

// EventType identifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event represents a processed input event. A resize carries no size;
// the drawable size is read back from the window.
type Event struct {
	Type EventType
	Key  rune
}

// Action returns the scene action bound to a key event.
func (e Event) Action() scene.Action {
	if e.Type != EventKeyDown {
		return scene.ActionNone
	}
	return scene.ActionForKey(e.Key)
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains the SDL event queue. Returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			i.events = append(i.events, e)
			if e.Type == EventQuit {
				quit = true
			}
		}
	}
	return quit
}

// translate converts an SDL event, dropping the kinds the scene ignores.
func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize}, true
		}

	case *sdl.KeyboardEvent:
		// Auto-repeat counts as a press
		if e.Type == sdl.KEYDOWN {
			return Event{
				Type: EventKeyDown,
				Key:  keyRune(e.Keysym.Sym),
			}, true
		}
	}
	return Event{}, false
}

// keyRune maps printable keycodes to their character and everything else
// to zero.
func keyRune(k sdl.Keycode) rune {
	if k >= 0x20 && k < 0x7f {
		return rune(k)
	}
	return 0
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
