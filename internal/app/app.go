// Package app runs the flight scene: it owns the window, renderer and
// scene state and drives the frame loop.
package app

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/flightsim/internal/config"
	"github.com/Faultbox/flightsim/internal/engine/input"
	"github.com/Faultbox/flightsim/internal/engine/material"
	"github.com/Faultbox/flightsim/internal/engine/renderer"
	"github.com/Faultbox/flightsim/internal/engine/window"
	"github.com/Faultbox/flightsim/internal/logger"
	"github.com/Faultbox/flightsim/internal/scene"
)

// App is the running flight scene.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	state    *scene.State
}

// New opens the window, loads both models and prints the controls to out.
func New(cfg *config.Config, out io.Writer) (*App, error) {
	logger.Info("initializing flight scene",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{config: cfg}

	// Window first, it owns the OpenGL context
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		X:          cfg.Window.X,
		Y:          cfg.Window.Y,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.GetSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	plane := loadMesh("plane", cfg.Models.Plane, material.PlaneTable())
	propeller := loadMesh("propeller", cfg.Models.Propeller, material.PropellerTable())
	a.renderer.SetModels(plane, propeller)

	sc := cfg.SceneState()
	sc.Width, sc.Height = width, height
	a.state = scene.New(sc)
	a.input = input.New()

	fmt.Fprint(out, scene.ControlsText())
	for _, b := range scene.Bindings {
		logger.Debug("key binding", zap.String("key", string(b.Key)), zap.Stringer("action", b.Action))
	}

	logger.Info("flight scene initialized")
	return a, nil
}

// Run drives the frame loop until the user quits or closes the window.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		// 1. Input
		if a.input.Update() {
			logger.Info("window closed")
			a.running = false
			break
		}
		if err := a.handleEvents(); err != nil {
			return err
		}
		if !a.running {
			break
		}

		// 2. Idle tick
		a.state.Tick()

		// 3. Render and present
		a.renderer.Render(a.state)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("phase", a.state.Propeller.Phase()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents applies the events gathered by the last input update.
func (a *App) handleEvents() error {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			width, height := a.window.GetSize()
			a.state.Resize(width, height)
			a.renderer.Resize(width, height)

		case input.EventKeyDown:
			action := event.Action()
			if action == scene.ActionNone {
				continue
			}
			logger.Debug("key", zap.String("key", string(event.Key)), zap.Stringer("action", action))

			switch a.state.Apply(action) {
			case scene.EffectWindowMode:
				err := a.window.SetFullscreen(a.state.Fullscreen,
					scene.WindowedWidth, scene.WindowedHeight, scene.WindowedX, scene.WindowedY)
				if err != nil {
					return fmt.Errorf("switching window mode: %w", err)
				}
			case scene.EffectQuit:
				logger.Info("quit requested")
				a.running = false
				return nil
			}
		}
	}
	return nil
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	logger.Info("closing flight scene")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
