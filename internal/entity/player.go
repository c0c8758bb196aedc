// Package entity contains the controllable player character.
package entity

import (
	"math"

	"github.com/Hector2242/pokeclone/internal/input"
	"github.com/Hector2242/pokeclone/internal/render"
	"github.com/Hector2242/pokeclone/internal/sprite"
)

// TargetHeight is the on-screen sprite height in world units. Frames
// are scaled so their height matches it, preserving aspect ratio.
const TargetHeight = 32.0

// Facing is the direction the player last moved in. It is sticky:
// while idle the previous facing persists.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns a direction name for logging and the debug overlay.
func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// Player is the controllable character. It owns its position, facing,
// animation clock and sprite set; the frame loop is the only mutator.
type Player struct {
	X, Y  float64
	Speed float64

	// RunBoost is the per-axis intent contribution while running.
	RunBoost float64

	facing    Facing
	moving    bool
	stateTime float64

	sprites *sprite.PlayerSprites
}

// NewPlayer creates a player at the given world position.
func NewPlayer(x, y, speed, runBoost float64, sprites *sprite.PlayerSprites) *Player {
	return &Player{
		X:        x,
		Y:        y,
		Speed:    speed,
		RunBoost: runBoost,
		facing:   FacingDown,
		sprites:  sprites,
	}
}

// Update advances the player by dt seconds using the sampled input.
// Movement is direction-normalized so diagonal speed equals axis speed,
// and the position is unconstrained: there is no bounds checking.
func (p *Player) Update(s input.State, dt float64) {
	vx, vy := s.Intent(p.RunBoost)

	// Vertical intent wins the facing tie-break.
	switch {
	case vy < 0:
		p.facing = FacingUp
	case vy > 0:
		p.facing = FacingDown
	case vx > 0:
		p.facing = FacingRight
	case vx < 0:
		p.facing = FacingLeft
	}

	length := math.Hypot(vx, vy)
	if length > 0 {
		vx /= length
		vy /= length
	}

	p.X += vx * p.Speed * dt
	p.Y += vy * p.Speed * dt

	p.moving = length > 0
	p.stateTime += dt
}

// Facing returns the current facing direction.
func (p *Player) Facing() Facing {
	return p.facing
}

// Moving reports whether the last update had a non-zero intent.
func (p *Player) Moving() bool {
	return p.moving
}

// Frame selects the sprite for the current facing and movement state.
// Idle facings map to a single still frame; walking facings cycle their
// two-frame loop off the lifetime animation clock.
func (p *Player) Frame() render.Image {
	if p.moving {
		switch p.facing {
		case FacingUp:
			return p.sprites.WalkUp.KeyFrame(p.stateTime)
		case FacingLeft:
			return p.sprites.WalkLeft.KeyFrame(p.stateTime)
		case FacingRight:
			return p.sprites.WalkRight.KeyFrame(p.stateTime)
		default:
			return p.sprites.WalkDown.KeyFrame(p.stateTime)
		}
	}

	switch p.facing {
	case FacingUp:
		return p.sprites.IdleUp
	case FacingLeft:
		return p.sprites.IdleLeft
	case FacingRight:
		return p.sprites.IdleRight
	default:
		return p.sprites.IdleDown
	}
}

// Draw renders the current frame at the given view position, scaled so
// the sprite is TargetHeight world units tall. Position and draw size
// are rounded to integers to avoid sub-pixel blur on pixel-art sprites.
func (p *Player) Draw(dst render.Image, viewX, viewY float64) {
	frame := p.Frame()
	srcW, srcH := frame.Size()

	scale := TargetHeight / float64(srcH)
	drawW := math.Round(float64(srcW) * scale)
	drawH := math.Round(float64(srcH) * scale)

	geom := render.NewGeoM()
	geom.Scale(drawW/float64(srcW), drawH/float64(srcH))
	geom.Translate(math.Round(viewX), math.Round(viewY))

	dst.DrawImage(frame, &render.DrawImageOptions{
		GeoM:   geom,
		Filter: render.FilterNearest,
	})
}

// Dispose releases the player's textures.
func (p *Player) Dispose() {
	if p.sprites != nil {
		p.sprites.Dispose()
	}
}
