// Package config provides YAML-based launcher and gameplay
// configuration for the game.
package config

import "fmt"

// Config is the root configuration for the game.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Player PlayerConfig `yaml:"player"`
	Assets AssetsConfig `yaml:"assets"`
	Debug  bool         `yaml:"debug"`
}

// WindowConfig defines the startup window parameters.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Vsync     bool   `yaml:"vsync"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
}

// PlayerConfig defines the player's tunables.
type PlayerConfig struct {
	// Speed is the walking speed in world units per second.
	Speed float64 `yaml:"speed"`
	// RunBoost is the per-axis intent contribution while shift is held.
	RunBoost float64 `yaml:"run_boost"`
	// StartX and StartY are the spawn position in world units.
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// AssetsConfig defines where sprite images are loaded from.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Window.TPS)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("invalid player speed: %v", c.Player.Speed)
	}
	if c.Assets.Dir == "" {
		return fmt.Errorf("assets dir is required")
	}
	return nil
}
