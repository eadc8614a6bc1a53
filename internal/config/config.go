// Package config handles flight scene configuration loading and management.
package config

import (
	"github.com/Faultbox/flightsim/internal/logger"
	"github.com/Faultbox/flightsim/internal/scene"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Models  ModelsConfig  `yaml:"models"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	X          int    `yaml:"x"`
	Y          int    `yaml:"y"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig holds the initial scene layout and toggles.
type SceneConfig struct {
	Wireframe     bool       `yaml:"wireframe"`
	SeaAndSky     bool       `yaml:"sea_and_sky"`
	CameraEye     [3]float32 `yaml:"camera_eye,flow"`
	CameraTarget  [3]float32 `yaml:"camera_target,flow"`
	LightPosition [4]float32 `yaml:"light_position,flow"`
	PlanePosition [3]float32 `yaml:"plane_position,flow"`
}

// ModelsConfig holds model file paths.
type ModelsConfig struct {
	Plane     string `yaml:"plane"`
	Propeller string `yaml:"propeller"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns a Config with the stock scene: a 640x640 window at the
// screen origin, wireframe on, reference grid backdrop.
func Default() *Config {
	sc := scene.DefaultConfig()
	return &Config{
		Window: WindowConfig{
			Title:      "Flight Sim",
			Width:      sc.Width,
			Height:     sc.Height,
			X:          scene.WindowedX,
			Y:          scene.WindowedY,
			Fullscreen: sc.Fullscreen,
			VSync:      false,
		},
		Scene: SceneConfig{
			Wireframe:     sc.Wireframe,
			SeaAndSky:     sc.SeaAndSky,
			CameraEye:     sc.CameraEye,
			CameraTarget:  sc.CameraTarget,
			LightPosition: sc.LightPosition,
			PlanePosition: sc.PlanePosition,
		},
		Models: ModelsConfig{
			Plane:     "plane.txt",
			Propeller: "prop.txt",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SceneState returns the scene's initial state parameters.
func (c *Config) SceneState() scene.Config {
	return scene.Config{
		CameraEye:     c.Scene.CameraEye,
		CameraTarget:  c.Scene.CameraTarget,
		LightPosition: c.Scene.LightPosition,
		PlanePosition: c.Scene.PlanePosition,
		Wireframe:     c.Scene.Wireframe,
		Fullscreen:    c.Window.Fullscreen,
		SeaAndSky:     c.Scene.SeaAndSky,
		Width:         c.Window.Width,
		Height:        c.Window.Height,
	}
}

// LoggerConfig returns the logger settings, with console output on.
func (c *Config) LoggerConfig() logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.File = c.Logging.LogFile
	if c.Logging.MaxSizeMB > 0 {
		lc.MaxSizeMB = c.Logging.MaxSizeMB
	}
	if c.Logging.MaxBackups > 0 {
		lc.MaxBackups = c.Logging.MaxBackups
	}
	return lc
}
