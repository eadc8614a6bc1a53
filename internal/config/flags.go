package config

import (
	"flag"
	"io"
)

// Flags holds the command-line overrides.
type Flags struct {
	fs *flag.FlagSet

	ConfigPath  string
	WriteConfig string
	Debug       bool
	Fullscreen  bool
	Windowed    bool
	VSync       bool
	Width       int
	Height      int
	Plane       string
	Propeller   string
}

// NewFlags registers the command-line flags on a new flag set.
func NewFlags(name string, output io.Writer) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(output)

	f.fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	f.fs.StringVar(&f.WriteConfig, "write-config", "", "Write the effective config to this path and exit")
	f.fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	f.fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Start in fullscreen mode")
	f.fs.BoolVar(&f.Windowed, "windowed", false, "Start in windowed mode")
	f.fs.BoolVar(&f.VSync, "vsync", false, "Sync buffer swaps to the display refresh")
	f.fs.IntVar(&f.Width, "width", 0, "Window width")
	f.fs.IntVar(&f.Height, "height", 0, "Window height")
	f.fs.StringVar(&f.Plane, "plane", "", "Plane model file")
	f.fs.StringVar(&f.Propeller, "propeller", "", "Propeller model file")
	return f
}

// ParseFlags parses args (without the program name).
func ParseFlags(name string, args []string, output io.Writer) (*Flags, error) {
	f := NewFlags(name, output)
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// set reports whether the named flag was given on the command line.
func (f *Flags) set(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// apply applies the explicitly given flags to cfg.
func (f *Flags) apply(cfg *Config) {
	if f == nil || f.fs == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Windowed {
		cfg.Window.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if f.set("vsync") {
		cfg.Window.VSync = f.VSync
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.Plane != "" {
		cfg.Models.Plane = f.Plane
	}
	if f.Propeller != "" {
		cfg.Models.Propeller = f.Propeller
	}
}
