package status

// Meter is a target-local saturation accumulator. It is independent of the
// effect manager: crossing the max threshold is the caller's cue to push
// the target into its soggy state, and the meter resets to zero.
type Meter struct {
	value float64
	max   float64
}

func NewMeter(max float64) *Meter {
	return &Meter{max: max}
}

// Add accumulates per-hit saturation. It reports true when the threshold
// was crossed by this addition, after which the counter is back at zero.
func (m *Meter) Add(amount float64) bool {
	if m.max <= 0 {
		return false
	}
	m.value += amount
	if m.value < m.max {
		return false
	}
	m.value = 0
	return true
}

func (m *Meter) Value() float64 { return m.value }

func (m *Meter) Max() float64 { return m.max }

// Ratio returns fill level in [0, 1], for HUD bars.
func (m *Meter) Ratio() float64 {
	if m.max <= 0 {
		return 0
	}
	return m.value / m.max
}
