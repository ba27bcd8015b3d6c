package weapon

import (
	"fmt"

	"driftwood/common"
)

// Owner is the entity a weapon is attached to. Shots originate at the
// muzzle position.
type Owner interface {
	Muzzle() common.Vec2
}

// Weapon is the shared fire contract. Fire returns false without side
// effects while cooling down or when no owner is attached; on success it
// runs the variant effect, starts the cooldown and returns true.
type Weapon interface {
	Config() Config
	Attach(owner Owner)
	Fire(dir common.Vec2) bool
	Update()
}

// Continuous is implemented by weapons that stay active while the trigger
// is held and tear down the instant it is released.
type Continuous interface {
	SetHeld(dir common.Vec2, held bool)
}

// New constructs a weapon for cfg. Projectile weapons draw from pool.
func New(cfg Config, pool *Pool) (Weapon, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case KindMelee:
		return NewMelee(cfg), nil
	case KindSpread:
		if pool == nil {
			return nil, fmt.Errorf("weapon %q: spread weapon needs a projectile pool", cfg.Name)
		}
		return NewSpread(cfg, pool), nil
	case KindGrapple:
		return NewGrapple(cfg), nil
	case KindCone:
		return NewCone(cfg), nil
	}
	return nil, fmt.Errorf("weapon %q: unknown kind %q", cfg.Name, cfg.Kind)
}

// base carries the cooldown state machine every variant shares:
// Ready (cooldown 0) -> fire -> Cooling -> Update decrements -> Ready.
type base struct {
	cfg      Config
	owner    Owner
	cooldown int
}

func (b *base) Config() Config { return b.cfg }

func (b *base) Attach(owner Owner) { b.owner = owner }

// ready reports whether a fire attempt may proceed.
func (b *base) ready() bool { return b.cooldown == 0 && b.owner != nil }

// startCooldown is the sole transition into Cooling.
func (b *base) startCooldown() { b.cooldown = b.cfg.FireRateFrames }

// Update decrements the cooldown once per tick, floored at zero.
func (b *base) Update() {
	if b.cooldown > 0 {
		b.cooldown--
	}
}

// Cooldown exposes the remaining cooldown frames, for HUD display.
func (b *base) Cooldown() int { return b.cooldown }
