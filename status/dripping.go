package status

// Dripping deals periodic damage while active: the target sheds health
// every tick interval until it dries off.
type Dripping struct {
	Base
	damagePerTick  float64
	intervalFrames int

	counter int
}

func NewDripping(durationFrames int, damagePerTick float64, intervalFrames int) *Dripping {
	if intervalFrames <= 0 {
		intervalFrames = 1
	}
	return &Dripping{
		Base:           NewBase(durationFrames),
		damagePerTick:  damagePerTick,
		intervalFrames: intervalFrames,
	}
}

func (d *Dripping) Type() Type { return TypeDripping }

func (d *Dripping) Apply(Target) {
	d.counter = d.intervalFrames
}

func (d *Dripping) Update(target Target) {
	d.counter--
	if d.counter > 0 {
		return
	}
	d.counter = d.intervalFrames
	if dmg, ok := target.(Damageable); ok {
		dmg.TakeDamage(d.damagePerTick)
	}
}

func (d *Dripping) Remove(Target) {}
