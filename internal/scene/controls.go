package scene

import "fmt"

// Action is a discrete user command.
type Action int

// Actions.
const (
	ActionNone Action = iota
	ActionToggleFullscreen
	ActionToggleWireframe
	ActionToggleSeaAndSky
	ActionQuit
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggleFullscreen:
		return "ToggleFullscreen"
	case ActionToggleWireframe:
		return "ToggleWireframe"
	case ActionToggleSeaAndSky:
		return "ToggleSeaAndSky"
	case ActionQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Binding ties a key to an action.
type Binding struct {
	Key         rune
	Action      Action
	Description string
}

// Bindings is the keyboard map in display order.
var Bindings = []Binding{
	{'w', ActionToggleWireframe, "Toggle between wireframe and solid draw mode"},
	{'f', ActionToggleFullscreen, "Toggle between fullscreen and non fullscreen"},
	{'s', ActionToggleSeaAndSky, "Toggle between sea and sky and frame reference grid"},
	{'q', ActionQuit, "Quit the program"},
}

// ActionForKey returns the action bound to key, or ActionNone.
func ActionForKey(key rune) Action {
	for _, b := range Bindings {
		if b.Key == key {
			return b.Action
		}
	}
	return ActionNone
}

// ControlsText renders the controls table shown at startup.
func ControlsText() string {
	text := "Scene Controls\n--------------\n"
	for _, b := range Bindings {
		text += fmt.Sprintf("%c: %s\n", b.Key, b.Description)
	}
	return text
}

// Effect tells the caller what must happen outside the scene after an action.
type Effect int

// Effects.
const (
	EffectNone Effect = iota
	EffectWindowMode
	EffectQuit
)

// Apply updates the state for action and reports the outside effect.
func (s *State) Apply(action Action) Effect {
	switch action {
	case ActionToggleWireframe:
		s.Wireframe = !s.Wireframe
	case ActionToggleSeaAndSky:
		s.SeaAndSky = !s.SeaAndSky
	case ActionToggleFullscreen:
		s.Fullscreen = !s.Fullscreen
		return EffectWindowMode
	case ActionQuit:
		return EffectQuit
	}
	return EffectNone
}
