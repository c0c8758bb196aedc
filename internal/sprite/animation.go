// Package sprite provides looping frame animation and ownership of the
// player's texture set.
package sprite

import "github.com/Hector2242/pokeclone/internal/render"

// FrameDuration is how long each walk frame is shown, in seconds.
const FrameDuration = 0.12

// Animation is a fixed-rate looping frame sequence.
type Animation struct {
	frames        []render.Image
	frameDuration float64
}

// NewAnimation creates a looping animation where each frame lasts
// frameDuration seconds.
func NewAnimation(frameDuration float64, frames ...render.Image) *Animation {
	return &Animation{frames: frames, frameDuration: frameDuration}
}

// KeyFrame returns the frame shown at elapsed time t. The loop is
// indexed off the entity's lifetime clock rather than time since the
// animation started, so switching between animations keeps the phase.
func (a *Animation) KeyFrame(t float64) render.Image {
	i := int(t/a.frameDuration) % len(a.frames)
	return a.frames[i]
}
