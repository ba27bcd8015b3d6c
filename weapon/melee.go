package weapon

import "driftwood/common"

// Melee is the sponge club: a successful fire spawns a short-lived hit
// region one range ahead of the owner along the fire direction.
type Melee struct {
	base
	region *Region
}

func NewMelee(cfg Config) *Melee {
	return &Melee{base: base{cfg: cfg}}
}

func (m *Melee) Fire(dir common.Vec2) bool {
	if !m.ready() {
		return false
	}

	center := m.owner.Muzzle().Add(dir.Normalized().Scale(m.cfg.Range))
	size := m.cfg.Range
	m.region = newRegion(common.Rect{
		X:     center.X - size/2,
		Y:     center.Y - size/2,
		Width: size, Height: size,
	}, m.cfg.Damage, m.cfg.Saturation, m.cfg.RegionFrames)

	m.startCooldown()
	return true
}

func (m *Melee) Update() {
	m.base.Update()
	m.region.update()
	if m.region.Expired() {
		m.region = nil
	}
}

// Region returns the live swing region, or nil between swings.
func (m *Melee) Region() *Region {
	if m.region.Expired() {
		return nil
	}
	return m.region
}
