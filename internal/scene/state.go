// Package scene holds the flight scene's state and the rules that evolve
// it: the propeller animation, display toggles, viewport changes and the
// placement of each model instance.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/flightsim/internal/engine/camera"
	"github.com/Faultbox/flightsim/internal/engine/lighting"
)

// Window geometry used when leaving fullscreen.
const (
	WindowedWidth  = 640
	WindowedHeight = 640
	WindowedX      = 0
	WindowedY      = 0
)

// Config holds the initial scene layout.
type Config struct {
	CameraEye     [3]float32
	CameraTarget  [3]float32
	LightPosition [4]float32
	PlanePosition [3]float32
	Wireframe     bool
	Fullscreen    bool
	SeaAndSky     bool
	Width         int
	Height        int
}

// DefaultConfig returns the stock scene layout.
func DefaultConfig() Config {
	return Config{
		CameraEye:     [3]float32{6, 2, 6},
		CameraTarget:  [3]float32{0, 0, 0},
		LightPosition: [4]float32{0, 60, 0, 1},
		PlanePosition: [3]float32{3, 0.5, 3},
		Wireframe:     true,
		Fullscreen:    false,
		SeaAndSky:     false,
		Width:         WindowedWidth,
		Height:        WindowedHeight,
	}
}

// State is the complete mutable state of the scene.
type State struct {
	Camera        *camera.LookAtCamera
	Light         lighting.Light
	LightModel    lighting.Model
	Fog           lighting.Fog
	PlanePosition mgl32.Vec3

	Propeller Animation

	Wireframe  bool
	Fullscreen bool
	SeaAndSky  bool

	width      int
	height     int
	projection camera.Perspective
}

// New creates scene state from cfg.
func New(cfg Config) *State {
	s := &State{
		Camera:        camera.NewLookAtCamera(cfg.CameraEye, cfg.CameraTarget),
		Light:         lighting.NewWhiteLight(cfg.LightPosition),
		LightModel:    lighting.DefaultModel(),
		Fog:           lighting.SeaFog(),
		PlanePosition: cfg.PlanePosition,
		Wireframe:     cfg.Wireframe,
		Fullscreen:    cfg.Fullscreen,
		SeaAndSky:     cfg.SeaAndSky,
	}
	s.Resize(cfg.Width, cfg.Height)
	return s
}

// Tick advances per-frame state by one idle tick.
func (s *State) Tick() {
	s.Propeller.Advance()
}

// Resize records the new viewport size and rebuilds the projection from
// scratch.
func (s *State) Resize(width, height int) {
	s.width = width
	s.height = height
	s.projection = camera.NewPerspective(width, height)
}

// Viewport returns the last recorded viewport size.
func (s *State) Viewport() (int, int) {
	return s.width, s.height
}

// Projection returns the current projection parameters.
func (s *State) Projection() camera.Perspective {
	return s.projection
}

// ProjectionMatrix returns the current projection matrix.
func (s *State) ProjectionMatrix() mgl32.Mat4 {
	return s.projection.Matrix()
}

// ViewMatrix returns the camera's view matrix.
func (s *State) ViewMatrix() mgl32.Mat4 {
	return s.Camera.ViewMatrix()
}
