// Package status implements timed status effects and the per-target
// effect manager, plus the saturation meter damageable targets carry.
package status

// Type identifies an effect slot. A target holds at most one effect per
// type at a time.
type Type string

const (
	TypeSoggy    Type = "soggy"
	TypeDripping Type = "dripping"
)

// InfiniteDuration makes an effect last until it is removed explicitly.
const InfiniteDuration = -1

// Target is the entity an effect modifies.
type Target interface {
	MoveSpeed() float64
	SetMoveSpeed(speed float64)
}

// Damageable is implemented by targets that effects can damage over time.
type Damageable interface {
	TakeDamage(amount float64)
}

// Effect is a typed, timed modifier. The manager drives the hooks: Apply
// once on attach, Update every tick, Remove exactly once on expiry,
// replacement or explicit removal.
type Effect interface {
	Type() Type
	Apply(target Target)
	Update(target Target)
	Remove(target Target)
	// Tick counts down one frame of remaining duration.
	Tick()
	Expired() bool
}

// Base provides the duration countdown shared by all effects.
type Base struct {
	remaining int
}

// NewBase sets the duration in frames; InfiniteDuration never expires.
func NewBase(durationFrames int) Base {
	return Base{remaining: durationFrames}
}

func (b *Base) Tick() {
	if b.remaining > 0 {
		b.remaining--
	}
}

func (b *Base) Expired() bool {
	return b.remaining == 0
}

// Remaining returns the frames left, or InfiniteDuration.
func (b *Base) Remaining() int { return b.remaining }
