// Package input samples the keyboard once per frame and converts the
// held keys into a per-axis movement intent.
package input

import "github.com/Hector2242/pokeclone/internal/render"

// State is the sampled keyboard state for one frame. WASD and the
// arrow keys are equivalent; either shift key engages the run modifier.
type State struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Run   bool
}

// Intent converts the state into a raw movement vector. Each held
// direction contributes 1 on its axis, or runBoost while the run
// modifier is held, so opposite directions always cancel. The vector is
// not normalized; callers that move an entity must normalize it first
// so diagonal movement is not faster than axis-aligned movement.
// Y grows downward to match screen coordinates.
func (s State) Intent(runBoost float64) (vx, vy float64) {
	step := 1.0
	if s.Run {
		step = runBoost
	}
	if s.Up {
		vy -= step
	}
	if s.Down {
		vy += step
	}
	if s.Left {
		vx -= step
	}
	if s.Right {
		vx += step
	}
	return vx, vy
}

// Sampler reads the current keyboard state through an InputManager.
type Sampler struct {
	input render.InputManager
}

// NewSampler creates a sampler over the given input manager.
func NewSampler(in render.InputManager) *Sampler {
	return &Sampler{input: in}
}

// Sample reads the directional and modifier keys once.
func (s *Sampler) Sample() State {
	return State{
		Up:    s.pressed(render.KeyW, render.KeyUp),
		Down:  s.pressed(render.KeyS, render.KeyDown),
		Left:  s.pressed(render.KeyA, render.KeyLeft),
		Right: s.pressed(render.KeyD, render.KeyRight),
		Run:   s.pressed(render.KeyShiftLeft, render.KeyShiftRight),
	}
}

func (s *Sampler) pressed(keys ...render.Key) bool {
	for _, k := range keys {
		if s.input.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
