package weapon

import "driftwood/common"

// Region is a transient damage area: a melee swing or the mist cone's
// current footprint. It expires on its own frame count, independent of the
// owning weapon's cooldown.
type Region struct {
	Rect       common.Rect
	Damage     float64
	Saturation float64

	ttl int
	// hit tracks target IDs already damaged by this region so a single
	// swing lands once per target.
	hit map[int]bool
}

func newRegion(rect common.Rect, damage, saturation float64, ttl int) *Region {
	return &Region{
		Rect:       rect,
		Damage:     damage,
		Saturation: saturation,
		ttl:        ttl,
		hit:        make(map[int]bool),
	}
}

func (r *Region) Expired() bool { return r == nil || r.ttl <= 0 }

// MarkHit records a target and reports whether it had not been hit yet by
// this region.
func (r *Region) MarkHit(targetID int) bool {
	if r == nil || r.hit[targetID] {
		return false
	}
	r.hit[targetID] = true
	return true
}

// resetHits forgets previous targets; the cone calls this on every damage
// tick so held fire keeps dealing damage at the tick interval.
func (r *Region) resetHits() {
	clear(r.hit)
}

func (r *Region) update() {
	if r != nil && r.ttl > 0 {
		r.ttl--
	}
}
