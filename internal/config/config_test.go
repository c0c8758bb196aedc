package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() is not valid: %v", err)
	}
}

func TestPartialFileOverlaysDefaults(t *testing.T) {
	yamlData := `
window:
  title: Test Window
  width: 1280
  height: 720
player:
  speed: 90
`
	cfg := Default()
	if err := yaml.Unmarshal([]byte(yamlData), &cfg); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}

	if cfg.Window.Title != "Test Window" {
		t.Errorf("Expected title 'Test Window', got '%s'", cfg.Window.Title)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("Expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Player.Speed != 90 {
		t.Errorf("Expected speed 90, got %v", cfg.Player.Speed)
	}

	// Untouched fields keep their defaults.
	if cfg.Window.TPS != 60 {
		t.Errorf("Expected default tps 60, got %d", cfg.Window.TPS)
	}
	if cfg.Player.RunBoost != 10 {
		t.Errorf("Expected default run_boost 10, got %v", cfg.Player.RunBoost)
	}
	if cfg.Assets.Dir != "assets/player" {
		t.Errorf("Expected default assets dir, got '%s'", cfg.Assets.Dir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := "window:\n  title: From File\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Window.Title != "From File" {
		t.Errorf("Expected title 'From File', got '%s'", cfg.Window.Title)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing config file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero window width",
			mutate:  func(c *Config) { c.Window.Width = 0 },
			wantErr: true,
		},
		{
			name:    "negative window height",
			mutate:  func(c *Config) { c.Window.Height = -1 },
			wantErr: true,
		},
		{
			name:    "zero tps",
			mutate:  func(c *Config) { c.Window.TPS = 0 },
			wantErr: true,
		},
		{
			name:    "zero speed",
			mutate:  func(c *Config) { c.Player.Speed = 0 },
			wantErr: true,
		},
		{
			name:    "empty assets dir",
			mutate:  func(c *Config) { c.Assets.Dir = "" },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
