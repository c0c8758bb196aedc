package game

// Logical resolution of the world, in world units. One world unit is
// one pixel at 1x scale, which keeps pixel art crisp.
const (
	VirtualWidth  = 320
	VirtualHeight = 180
)

// Viewport is the placement of the scaled logical canvas inside the
// window: the largest integer scale that fits, centered, with the
// remaining window space left as letterbox borders.
type Viewport struct {
	Scale  int
	X, Y   int // top-left corner of the viewport in window pixels
	Width  int
	Height int
}

// Fit computes the integer-scale viewport for a window of the given
// size. The scale never drops below 1, so windows smaller than the
// logical resolution crop rather than shrink.
func Fit(windowWidth, windowHeight int) Viewport {
	scale := windowWidth / VirtualWidth
	if s := windowHeight / VirtualHeight; s < scale {
		scale = s
	}
	if scale < 1 {
		scale = 1
	}

	vpW := VirtualWidth * scale
	vpH := VirtualHeight * scale

	return Viewport{
		Scale:  scale,
		X:      (windowWidth - vpW) / 2,
		Y:      (windowHeight - vpH) / 2,
		Width:  vpW,
		Height: vpH,
	}
}

// Camera is the world-space point at the center of the view. The
// scaffold keeps it fixed on the logical-resolution center instead of
// following the player.
type Camera struct {
	X, Y float64
}

// CenterOn moves the camera to look at (x, y).
func (c *Camera) CenterOn(x, y float64) {
	c.X = x
	c.Y = y
}

// View translates a world position into view coordinates on the
// logical canvas.
func (c Camera) View(x, y float64) (float64, float64) {
	return x - c.X + VirtualWidth/2, y - c.Y + VirtualHeight/2
}
