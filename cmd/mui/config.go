package main

import (
	"os"
	"time"

	"github.com/esimov/mui"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config represents the optional mui.toml file.
type Config struct {
	Window WindowConfig `toml:"window"`
	Frame  FrameConfig  `toml:"frame"`
	Demo   DemoConfig   `toml:"demo"`
}

type WindowConfig struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	X          int  `toml:"x"`
	Y          int  `toml:"y"`
	Fullscreen bool `toml:"fullscreen"`
	// Backend is either "x11" or "gio".
	Backend string `toml:"backend"`
	// X display name, empty means $DISPLAY.
	Display string `toml:"display"`
}

type FrameConfig struct {
	TimeoutMs int `toml:"timeout_ms"`
}

type DemoConfig struct {
	// Image is a local path or an URL; empty draws a generated gradient.
	Image string `toml:"image"`
	// Snapshot, when set, receives the last frame on exit.
	Snapshot string `toml:"snapshot"`
	MaxInput int    `toml:"max_input"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:   850,
			Height:  550,
			X:       50,
			Y:       50,
			Backend: backendX11,
		},
		Frame: FrameConfig{
			TimeoutMs: int(mui.DefaultTimeout / time.Millisecond),
		},
		Demo: DemoConfig{
			MaxInput: mui.DefaultMaxLen,
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the values the demo cannot work with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Backend != backendX11 && c.Window.Backend != backendGio {
		return errors.Errorf("unknown backend %q", c.Window.Backend)
	}
	if c.Frame.TimeoutMs < 0 {
		return errors.Errorf("negative frame timeout %d", c.Frame.TimeoutMs)
	}
	if c.Demo.MaxInput <= 0 {
		return errors.Errorf("max_input must be positive, got %d", c.Demo.MaxInput)
	}
	return nil
}

// Timeout is the frame timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Frame.TimeoutMs) * time.Millisecond
}
