package weapon

import "driftwood/common"

const projectileSize = 12

// Projectile is a pooled water droplet. Inactive projectiles are never
// drawn or considered for collision; they simply wait in the pool.
type Projectile struct {
	Pos common.Vec2
	Vel common.Vec2 // pixels per second

	Damage     float64
	Saturation float64

	lifeFrames int
	active     bool
}

func (p *Projectile) Active() bool { return p.active }

// Bounds returns the projectile's collision rect centered on Pos.
func (p *Projectile) Bounds() common.Rect {
	return common.Rect{
		X:     p.Pos.X - projectileSize/2,
		Y:     p.Pos.Y - projectileSize/2,
		Width: projectileSize, Height: projectileSize,
	}
}

// Retire deactivates the projectile early, e.g. on hit. Safe to call on an
// already-inactive projectile.
func (p *Projectile) Retire() { p.active = false }

// Pool is a fixed-capacity projectile pool. Launching past capacity drops
// the shot instead of growing; exhaustion is not an error.
type Pool struct {
	items []Projectile
}

func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{items: make([]Projectile, capacity)}
}

func (p *Pool) Capacity() int { return len(p.items) }

func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.items {
		if p.items[i].active {
			n++
		}
	}
	return n
}

// Launch acquires an inactive projectile and arms it. Returns nil when the
// pool is exhausted; the caller silently drops the shot.
func (p *Pool) Launch(pos, vel common.Vec2, lifeFrames int, damage, saturation float64) *Projectile {
	for i := range p.items {
		pr := &p.items[i]
		if pr.active {
			continue
		}
		pr.Pos = pos
		pr.Vel = vel
		pr.Damage = damage
		pr.Saturation = saturation
		pr.lifeFrames = lifeFrames
		pr.active = true
		return pr
	}
	return nil
}

// Update advances all active projectiles one tick and retires the ones
// whose lifetime ran out.
func (p *Pool) Update() {
	const dt = 1.0 / common.TPS
	for i := range p.items {
		pr := &p.items[i]
		if !pr.active {
			continue
		}
		pr.Pos = pr.Pos.Add(pr.Vel.Scale(dt))
		pr.lifeFrames--
		if pr.lifeFrames <= 0 {
			pr.active = false
		}
	}
}

// ForEachActive visits every live projectile. The callback may Retire the
// projectile it is handed.
func (p *Pool) ForEachActive(fn func(*Projectile)) {
	for i := range p.items {
		if p.items[i].active {
			fn(&p.items[i])
		}
	}
}
