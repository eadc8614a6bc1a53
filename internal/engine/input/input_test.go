package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/flightsim/internal/scene"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		key  sdl.Keycode
		want scene.Action
	}{
		{sdl.K_f, scene.ActionToggleFullscreen},
		{sdl.K_w, scene.ActionToggleWireframe},
		{sdl.K_s, scene.ActionToggleSeaAndSky},
		{sdl.K_q, scene.ActionQuit},
		{sdl.K_a, scene.ActionNone},
		{sdl.K_ESCAPE, scene.ActionNone},
		{sdl.K_F1, scene.ActionNone},
	}

	for _, tt := range tests {
		e, ok := translate(&sdl.KeyboardEvent{
			Type:   sdl.KEYDOWN,
			Keysym: sdl.Keysym{Sym: tt.key},
		})
		if !ok {
			t.Fatalf("key %d: event dropped", tt.key)
		}
		if got := e.Action(); got != tt.want {
			t.Errorf("key %d: Action() = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestTranslateIgnoresKeyUp(t *testing.T) {
	_, ok := translate(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Sym: sdl.K_q},
	})
	if ok {
		t.Error("key release should be dropped")
	}
}

func TestTranslateWindowEvents(t *testing.T) {
	e, ok := translate(&sdl.WindowEvent{
		Event: sdl.WINDOWEVENT_SIZE_CHANGED,
		Data1: 800,
		Data2: 600,
	})
	if !ok || e.Type != EventWindowResize {
		t.Fatalf("size change: got %+v, %v", e, ok)
	}

	if _, ok := translate(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED}); ok {
		t.Error("window move should be dropped")
	}

	e, ok = translate(&sdl.QuitEvent{})
	if !ok || e.Type != EventQuit {
		t.Errorf("quit: got %+v, %v", e, ok)
	}
}

func TestNonKeyEventsHaveNoAction(t *testing.T) {
	for _, e := range []Event{
		{Type: EventQuit},
		{Type: EventWindowResize},
		{Type: EventNone, Key: 'q'},
	} {
		if a := e.Action(); a != scene.ActionNone {
			t.Errorf("%+v: Action() = %v, want None", e, a)
		}
	}
}
