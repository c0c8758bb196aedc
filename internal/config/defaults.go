package config

// Default returns the compiled-in configuration: a 960x540 window
// (3x the 320x180 logical resolution), vsync locked at 60 ticks per
// second, and the original sprite tunables.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "Poke Clone",
			Width:     960,
			Height:    540,
			Vsync:     true,
			TPS:       60,
			Resizable: true,
		},
		Player: PlayerConfig{
			Speed:    60,
			RunBoost: 10,
			StartX:   160,
			StartY:   90,
		},
		Assets: AssetsConfig{
			Dir: "assets/player",
		},
	}
}
