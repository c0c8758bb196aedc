package input

import (
	"testing"

	"github.com/Hector2242/pokeclone/internal/render"
	"github.com/Hector2242/pokeclone/internal/render/rendertest"
)

func TestIntent(t *testing.T) {
	tests := []struct {
		name   string
		state  State
		wantVx float64
		wantVy float64
	}{
		{
			name:   "no keys held",
			state:  State{},
			wantVx: 0,
			wantVy: 0,
		},
		{
			name:   "up moves negative y",
			state:  State{Up: true},
			wantVx: 0,
			wantVy: -1,
		},
		{
			name:   "down moves positive y",
			state:  State{Down: true},
			wantVx: 0,
			wantVy: 1,
		},
		{
			name:   "opposite vertical keys cancel",
			state:  State{Up: true, Down: true},
			wantVx: 0,
			wantVy: 0,
		},
		{
			name:   "opposite horizontal keys cancel",
			state:  State{Left: true, Right: true},
			wantVx: 0,
			wantVy: 0,
		},
		{
			name:   "all four cancel",
			state:  State{Up: true, Down: true, Left: true, Right: true},
			wantVx: 0,
			wantVy: 0,
		},
		{
			name:   "diagonal",
			state:  State{Up: true, Right: true},
			wantVx: 1,
			wantVy: -1,
		},
		{
			name:   "run scales contribution",
			state:  State{Right: true, Run: true},
			wantVx: 10,
			wantVy: 0,
		},
		{
			name:   "run with opposite keys still cancels",
			state:  State{Up: true, Down: true, Run: true},
			wantVx: 0,
			wantVy: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vx, vy := tc.state.Intent(10)
			if vx != tc.wantVx || vy != tc.wantVy {
				t.Errorf("Intent() = (%v, %v), expected (%v, %v)", vx, vy, tc.wantVx, tc.wantVy)
			}
		})
	}
}

func TestSamplerWASDAndArrowsAreEquivalent(t *testing.T) {
	wasd := NewSampler(rendertest.NewInput(render.KeyW, render.KeyA, render.KeyS, render.KeyD)).Sample()
	arrows := NewSampler(rendertest.NewInput(render.KeyUp, render.KeyLeft, render.KeyDown, render.KeyRight)).Sample()

	if wasd != arrows {
		t.Errorf("WASD state %+v differs from arrow state %+v", wasd, arrows)
	}
	if !wasd.Up || !wasd.Down || !wasd.Left || !wasd.Right {
		t.Errorf("Expected all directions held, got %+v", wasd)
	}
}

func TestSamplerShiftKeys(t *testing.T) {
	left := NewSampler(rendertest.NewInput(render.KeyShiftLeft)).Sample()
	right := NewSampler(rendertest.NewInput(render.KeyShiftRight)).Sample()

	if !left.Run || !right.Run {
		t.Errorf("Expected either shift key to engage run, got left=%v right=%v", left.Run, right.Run)
	}
}

func TestSamplerIdle(t *testing.T) {
	s := NewSampler(rendertest.NewInput()).Sample()
	if s != (State{}) {
		t.Errorf("Expected empty state with no keys held, got %+v", s)
	}
}
