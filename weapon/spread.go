package weapon

import (
	"math"

	"driftwood/common"
)

// Spread is the spray nozzle: each shot launches a fan of pellets at fixed
// angular offsets around the aim direction, all drawn from the shared pool.
// When the pool runs dry the remaining pellets are silently dropped.
type Spread struct {
	base
	pool *Pool
}

func NewSpread(cfg Config, pool *Pool) *Spread {
	return &Spread{base: base{cfg: cfg}, pool: pool}
}

func (s *Spread) Fire(dir common.Vec2) bool {
	if !s.ready() {
		return false
	}

	pellets := s.cfg.Pellets
	if pellets <= 0 {
		pellets = 3
	}
	halfArc := s.cfg.SpreadDegrees * math.Pi / 180

	aim := dir.Normalized()
	origin := s.owner.Muzzle()
	for i := 0; i < pellets; i++ {
		// symmetric offsets across [-halfArc, +halfArc], center pellet straight
		offset := 0.0
		if pellets > 1 {
			offset = -halfArc + 2*halfArc*float64(i)/float64(pellets-1)
		}
		vel := aim.Rotated(offset).Scale(s.cfg.ProjectileSpeed)
		s.pool.Launch(origin, vel, s.cfg.ProjectileLifeFrames, s.cfg.Damage, s.cfg.Saturation)
	}

	s.startCooldown()
	return true
}
