package weapon

import "driftwood/common"

// Grapple is the kelp line: firing computes an end point at fixed range
// along the aim direction and shows a transient line indicator that
// expires after a short delay. Pull-force application and raycast target
// resolution are deliberately not implemented; the indicator is the whole
// effect for now.
type Grapple struct {
	base
	start, end common.Vec2
	lineTTL    int
}

func NewGrapple(cfg Config) *Grapple {
	return &Grapple{base: base{cfg: cfg}}
}

func (g *Grapple) Fire(dir common.Vec2) bool {
	if !g.ready() {
		return false
	}

	g.start = g.owner.Muzzle()
	g.end = g.start.Add(dir.Normalized().Scale(g.cfg.Range))
	g.lineTTL = g.cfg.RegionFrames

	g.startCooldown()
	return true
}

func (g *Grapple) Update() {
	g.base.Update()
	if g.lineTTL > 0 {
		g.lineTTL--
	}
}

// Line returns the indicator endpoints while it is visible.
func (g *Grapple) Line() (start, end common.Vec2, ok bool) {
	if g.lineTTL <= 0 {
		return common.Vec2{}, common.Vec2{}, false
	}
	return g.start, g.end, true
}
