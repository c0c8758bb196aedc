// pokeclone is a top-down 2D game scaffold: a fixed 320x180 world
// rendered with integer scaling, and a keyboard-driven player with
// four-directional idle/walk animation.
//
// Usage:
//
//	pokeclone [--config path] [--assets dir] [--debug]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Hector2242/pokeclone/internal/config"
	"github.com/Hector2242/pokeclone/internal/game"
	ebitenrender "github.com/Hector2242/pokeclone/internal/render/ebiten"
)

var (
	flagConfig string
	flagAssets string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "pokeclone",
	Short: "A top-down 2D game scaffold",
	Long: `pokeclone opens a window and runs a minimal top-down game:
WASD or the arrow keys move the player, shift makes them run.

The world is a fixed 320x180 logical resolution scaled to the window
by the largest integer factor that fits, letterboxed and centered.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file (default ./pokeclone.yaml)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Override the sprite asset directory")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if flagDebug {
		cfg.Debug = true
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	// Initialize the renderer backend (ebiten).
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	// Set up the window before the loop starts.
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	engine.SetVsyncEnabled(cfg.Window.Vsync)
	engine.SetTPS(cfg.Window.TPS)

	g, err := game.New(cfg, renderer, inputMgr, loader)
	if err != nil {
		return err
	}
	defer g.Dispose()

	log.Info("starting game",
		"title", cfg.Window.Title,
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"vsync", cfg.Window.Vsync,
		"tps", cfg.Window.TPS)

	if err := engine.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}

	log.Info("shut down cleanly")
	return nil
}
