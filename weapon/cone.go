package weapon

import "driftwood/common"

// Cone is the mist sprayer: while the trigger is held its damage region is
// re-anchored at the owner along the current aim every frame, and torn
// down the instant firing stops. FireRateFrames governs the interval
// between damage ticks, not shot cadence.
type Cone struct {
	base
	held   bool
	aim    common.Vec2
	region *Region

	// pendingHits carries the region's hit bookkeeping across a trigger
	// release and re-hold inside the same cooldown, so tapping the
	// trigger cannot damage targets faster than the tick interval.
	pendingHits map[int]bool
}

func NewCone(cfg Config) *Cone {
	return &Cone{base: base{cfg: cfg}}
}

// Fire is a damage tick attempt. The region itself lives and dies with the
// held state, not with Fire.
func (c *Cone) Fire(dir common.Vec2) bool {
	if !c.ready() {
		return false
	}

	c.aim = dir.Normalized()
	c.ensureRegion()
	// new tick: previous targets may be damaged again
	c.region.resetHits()

	c.startCooldown()
	return true
}

// SetHeld tracks the trigger. Releasing removes the region immediately.
func (c *Cone) SetHeld(dir common.Vec2, held bool) {
	c.held = held
	if !held {
		c.dropRegion()
		return
	}
	if l := dir.Len(); l > 0 {
		c.aim = dir.Normalized()
	}
}

func (c *Cone) Update() {
	c.base.Update()
	if !c.held || c.owner == nil {
		c.dropRegion()
		return
	}
	// re-anchor every frame at the owner's position along current aim
	c.ensureRegion()
	c.positionRegion()
}

// dropRegion tears the region down, stashing its hit map while the
// cooldown still runs.
func (c *Cone) dropRegion() {
	if c.region != nil && c.cooldown > 0 {
		c.pendingHits = c.region.hit
	}
	c.region = nil
}

func (c *Cone) ensureRegion() {
	if c.region == nil {
		c.region = newRegion(common.Rect{}, c.cfg.Damage, c.cfg.Saturation, 1)
		if c.cooldown > 0 && c.pendingHits != nil {
			c.region.hit = c.pendingHits
		}
		c.pendingHits = nil
		c.positionRegion()
	}
	// the region never self-expires while held
	c.region.ttl = 1
}

func (c *Cone) positionRegion() {
	if c.owner == nil || c.region == nil {
		return
	}
	center := c.owner.Muzzle().Add(c.aim.Scale(c.cfg.Range / 2))
	c.region.Rect = common.Rect{
		X:     center.X - c.cfg.Range/2,
		Y:     center.Y - c.cfg.Range/4,
		Width: c.cfg.Range, Height: c.cfg.Range / 2,
	}
}

// Region returns the cone footprint while the trigger is held.
func (c *Cone) Region() *Region { return c.region }

// Aim returns the current spray direction, for rendering.
func (c *Cone) Aim() common.Vec2 { return c.aim }

// Held reports whether the trigger is currently held.
func (c *Cone) Held() bool { return c.held }
