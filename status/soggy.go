package status

// Soggy slows a waterlogged target and amplifies the damage it takes. The
// pre-effect move speed is recorded on apply and restored verbatim on
// remove; dividing the factor back out would drift across repeated
// apply/remove cycles.
type Soggy struct {
	Base
	speedFactor  float64
	damageFactor float64

	originalSpeed float64
	applied       bool
}

// NewSoggy builds a soggy effect. speedFactor scales move speed while
// active; damageFactor is queried by the target's damage-taking logic.
func NewSoggy(durationFrames int, speedFactor, damageFactor float64) *Soggy {
	return &Soggy{
		Base:         NewBase(durationFrames),
		speedFactor:  speedFactor,
		damageFactor: damageFactor,
	}
}

func (s *Soggy) Type() Type { return TypeSoggy }

func (s *Soggy) Apply(target Target) {
	s.originalSpeed = target.MoveSpeed()
	s.applied = true
	target.SetMoveSpeed(s.originalSpeed * s.speedFactor)
}

func (s *Soggy) Update(Target) {}

func (s *Soggy) Remove(target Target) {
	if !s.applied {
		return
	}
	s.applied = false
	target.SetMoveSpeed(s.originalSpeed)
}

// DamageMultiplier scales incoming damage while the target is soggy.
func (s *Soggy) DamageMultiplier() float64 { return s.damageFactor }
