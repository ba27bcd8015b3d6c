package status

import "testing"

func TestSoggySlowsAndRestoresExactSpeed(t *testing.T) {
	target := &stubTarget{speed: 100}
	m := NewManager(target)

	m.ApplyEffect(NewSoggy(300, 1.5, 2))
	if target.speed != 150 {
		t.Fatalf("speed under soggy = %v, want 150", target.speed)
	}

	for i := 0; i < 300; i++ {
		m.Update()
	}
	if m.HasEffect(TypeSoggy) {
		t.Fatalf("soggy should auto-remove after 300 updates")
	}
	if target.speed != 100 {
		t.Fatalf("restored speed = %v, want the stored original 100", target.speed)
	}
}

func TestSoggyRestoreSurvivesRepeatedCycles(t *testing.T) {
	// an awkward base speed whose scaled value does not round-trip through
	// division; the stored original must come back bit-exact anyway
	const base = 103.3
	target := &stubTarget{speed: base}
	m := NewManager(target)

	for i := 0; i < 50; i++ {
		m.ApplyEffect(NewSoggy(2, 0.7, 1.5))
		m.Update()
		m.Update()
	}
	if target.speed != base {
		t.Fatalf("speed drifted to %v after repeated cycles, want exactly %v", target.speed, base)
	}
}

func TestSoggyReapplyKeepsOriginalBaseline(t *testing.T) {
	target := &stubTarget{speed: 100}
	m := NewManager(target)

	m.ApplyEffect(NewSoggy(InfiniteDuration, 0.5, 2))
	if target.speed != 50 {
		t.Fatalf("speed = %v, want 50", target.speed)
	}

	// replacement removes the old instance first, so the new one records
	// the true base speed rather than the already-scaled value
	m.ApplyEffect(NewSoggy(InfiniteDuration, 0.5, 2))
	if target.speed != 50 {
		t.Fatalf("speed after reapply = %v, want 50 (not compounded to 25)", target.speed)
	}

	m.RemoveEffect(TypeSoggy)
	if target.speed != 100 {
		t.Fatalf("speed after removal = %v, want 100", target.speed)
	}
}

func TestSoggyDamageMultiplier(t *testing.T) {
	s := NewSoggy(InfiniteDuration, 0.5, 2.5)
	if s.DamageMultiplier() != 2.5 {
		t.Fatalf("damage multiplier = %v, want 2.5", s.DamageMultiplier())
	}
}

func TestMeterThreshold(t *testing.T) {
	cases := []struct {
		name      string
		max       float64
		hits      []float64
		wantCross []bool
		wantValue float64
	}{
		{"single_big_hit", 100, []float64{100}, []bool{true}, 0},
		{"accumulates", 100, []float64{40, 40, 40}, []bool{false, false, true}, 0},
		{"resets_after_cross", 50, []float64{60, 10}, []bool{true, false}, 10},
		{"never_crosses", 100, []float64{10, 10}, []bool{false, false}, 20},
		{"zero_max_disabled", 0, []float64{999}, []bool{false}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewMeter(c.max)
			for i, hit := range c.hits {
				if got := m.Add(hit); got != c.wantCross[i] {
					t.Fatalf("hit %d: Add(%v) = %v, want %v", i, hit, got, c.wantCross[i])
				}
			}
			if m.Value() != c.wantValue {
				t.Fatalf("meter value = %v, want %v", m.Value(), c.wantValue)
			}
		})
	}
}
