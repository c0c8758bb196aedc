// Package game drives the per-frame loop: sample input, update the
// player, update the camera, and composite the logical canvas onto the
// window with integer scaling.
package game

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/Hector2242/pokeclone/internal/config"
	"github.com/Hector2242/pokeclone/internal/entity"
	"github.com/Hector2242/pokeclone/internal/input"
	"github.com/Hector2242/pokeclone/internal/render"
	"github.com/Hector2242/pokeclone/internal/sprite"
)

// backgroundColor clears the world each frame.
var backgroundColor = color.RGBA{R: 28, G: 33, B: 43, A: 255}

// letterboxColor fills the window space outside the viewport.
var letterboxColor = color.Black

// Game holds all game state and implements render.Game.
type Game struct {
	player  *entity.Player
	sampler *input.Sampler
	camera  Camera

	renderer render.Renderer
	world    render.Image // logical-resolution canvas

	dt    float64 // seconds per tick
	debug bool

	disposed bool
}

// New creates the game, loading the player's sprites through the given
// loader. On a load failure everything allocated so far is released
// before the error is returned.
func New(cfg config.Config, renderer render.Renderer, inputMgr render.InputManager, loader render.ResourceLoader) (*Game, error) {
	sprites, err := sprite.LoadPlayerSprites(loader, cfg.Assets.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load player sprites: %w", err)
	}
	log.Debug("player sprites loaded", "dir", cfg.Assets.Dir)

	g := &Game{
		player:   entity.NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Speed, cfg.Player.RunBoost, sprites),
		sampler:  input.NewSampler(inputMgr),
		renderer: renderer,
		world:    renderer.NewImage(VirtualWidth, VirtualHeight),
		dt:       1.0 / float64(cfg.Window.TPS),
		debug:    cfg.Debug,
	}
	g.camera.CenterOn(VirtualWidth/2, VirtualHeight/2)
	return g, nil
}

// Update runs one logic tick: sample input, advance the player, and
// re-center the camera.
func (g *Game) Update() error {
	state := g.sampler.Sample()
	g.player.Update(state, g.dt)

	// Fixed camera: always looking at the world center.
	g.camera.CenterOn(VirtualWidth/2, VirtualHeight/2)
	return nil
}

// Draw renders one frame: clear the logical canvas, draw the player
// through the camera, then composite the canvas onto the window at the
// integer-scale viewport.
func (g *Game) Draw(screen render.Image) {
	g.world.Fill(backgroundColor)

	viewX, viewY := g.camera.View(g.player.X, g.player.Y)
	g.player.Draw(g.world, viewX, viewY)

	screen.Fill(letterboxColor)
	w, h := screen.Size()
	vp := Fit(w, h)

	geom := render.NewGeoM()
	geom.Scale(float64(vp.Scale), float64(vp.Scale))
	geom.Translate(float64(vp.X), float64(vp.Y))
	screen.DrawImage(g.world, &render.DrawImageOptions{
		GeoM:   geom,
		Filter: render.FilterNearest,
	})

	if g.debug {
		g.drawDebug(screen, vp)
	}
}

// Layout returns the window size unchanged; the game does its own
// integer-scale letterboxing in Draw.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// drawDebug overlays player and viewport state in the window corner.
func (g *Game) drawDebug(screen render.Image, vp Viewport) {
	state := "idle"
	if g.player.Moving() {
		state = "walking"
	}
	info := fmt.Sprintf("pos (%.1f, %.1f)  facing %s  %s  scale %dx",
		g.player.X, g.player.Y, g.player.Facing(), state, vp.Scale)
	g.renderer.DrawText(screen, info, 4, 4, color.White)
}

// Dispose releases all GPU-resident resources. It must run on every
// exit path and is safe to call more than once.
func (g *Game) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true

	g.player.Dispose()
	g.world.Dispose()
	log.Debug("game resources released")
}
