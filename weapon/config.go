// Package weapon implements the cooldown-gated weapon set: melee sponge,
// spread nozzle, grapple line and mist cone, plus the shared projectile
// pool and the inventory manager.
package weapon

import "fmt"

// Kind selects a weapon implementation.
type Kind string

const (
	KindMelee   Kind = "melee"
	KindSpread  Kind = "spread"
	KindGrapple Kind = "grapple"
	KindCone    Kind = "cone"
)

// Config is the immutable per-weapon-type record. It is read once at
// construction and never mutated afterwards.
type Config struct {
	Name string
	Kind Kind

	// FireRateFrames is the cooldown set after a successful fire. For the
	// cone it is the interval between damage ticks while held.
	FireRateFrames int
	Damage         float64
	// Saturation applied to a damageable target per hit.
	Saturation float64

	// Range is the reach of melee regions, the grapple line and the cone.
	Range float64

	// Projectile tuning; only the spread weapon uses these.
	ProjectileSpeed      float64
	ProjectileLifeFrames int
	Pellets              int
	SpreadDegrees        float64

	// RegionFrames is how long a melee hit region or grapple indicator
	// lives, independent of the cooldown.
	RegionFrames int
}

func (c Config) validate() error {
	if c.FireRateFrames < 0 {
		return fmt.Errorf("weapon %q: negative fire rate", c.Name)
	}
	switch c.Kind {
	case KindMelee, KindSpread, KindGrapple, KindCone:
		return nil
	default:
		return fmt.Errorf("weapon %q: unknown kind %q", c.Name, c.Kind)
	}
}
