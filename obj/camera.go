package obj

import (
	"driftwood/common"
)

// Camera is a smoothed follow camera clamped to the level bounds.
type Camera struct {
	center common.Vec2
	target common.Vec2

	// smoothness in (0, 1]: fraction of the remaining distance covered
	// per frame; 1 snaps.
	smoothness float64

	worldW, worldH float64
}

func NewCamera(worldW, worldH float64, smoothness float64) *Camera {
	if smoothness <= 0 || smoothness > 1 {
		smoothness = 0.15
	}
	return &Camera{smoothness: smoothness, worldW: worldW, worldH: worldH}
}

// Follow sets the point the camera eases toward.
func (c *Camera) Follow(p common.Vec2) { c.target = p }

// Snap centers the camera immediately, e.g. on level start.
func (c *Camera) Snap(p common.Vec2) {
	c.target = p
	c.center = p
	c.clamp()
}

func (c *Camera) Update() {
	c.center.X = common.Lerp(c.center.X, c.target.X, c.smoothness)
	c.center.Y = common.Lerp(c.center.Y, c.target.Y, c.smoothness)
	c.clamp()
}

func (c *Camera) clamp() {
	halfW, halfH := float64(common.BaseWidth)/2, float64(common.BaseHeight)/2
	if c.worldW > common.BaseWidth {
		c.center.X = common.Clamp(c.center.X, halfW, c.worldW-halfW)
	} else {
		c.center.X = c.worldW / 2
	}
	if c.worldH > common.BaseHeight {
		c.center.Y = common.Clamp(c.center.Y, halfH, c.worldH-halfH)
	} else {
		c.center.Y = c.worldH / 2
	}
}

// ViewTopLeft returns the world position of the view's top-left corner.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.center.X - common.BaseWidth/2, c.center.Y - common.BaseHeight/2
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p common.Vec2) (float64, float64) {
	vx, vy := c.ViewTopLeft()
	return p.X - vx, p.Y - vy
}
