package prefabs

import (
	"testing"

	"driftwood/weapon"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.MoveSpeed <= 0 || spec.JumpSpeed <= 0 {
		t.Fatalf("player spec missing movement tuning: %+v", spec)
	}
	if spec.CoyoteFrames <= 0 || spec.JumpBufferFrames <= 0 {
		t.Fatalf("player spec missing jump grace tuning: %+v", spec)
	}
	if spec.Collider.Width <= 0 || spec.Collider.Height <= 0 {
		t.Fatalf("player spec missing collider: %+v", spec)
	}
}

func TestLoadWeaponsSpec(t *testing.T) {
	spec, err := LoadWeaponsSpec()
	if err != nil {
		t.Fatalf("LoadWeaponsSpec: %v", err)
	}
	if spec.PoolCapacity <= 0 {
		t.Fatalf("pool capacity = %d, want > 0", spec.PoolCapacity)
	}

	kinds := make(map[weapon.Kind]bool)
	pool := weapon.NewPool(spec.PoolCapacity)
	for _, ws := range spec.Weapons {
		w, err := weapon.New(ws.Config(), pool)
		if err != nil {
			t.Fatalf("weapon %q does not construct: %v", ws.Name, err)
		}
		kinds[w.Config().Kind] = true
	}
	for _, k := range []weapon.Kind{weapon.KindMelee, weapon.KindSpread, weapon.KindGrapple, weapon.KindCone} {
		if !kinds[k] {
			t.Fatalf("weapons.yaml should declare a %s weapon", k)
		}
	}
}

func TestLoadEnemySpec(t *testing.T) {
	spec, err := LoadEnemySpec()
	if err != nil {
		t.Fatalf("LoadEnemySpec: %v", err)
	}
	if spec.SaturationMax <= 0 {
		t.Fatalf("enemy spec needs a saturation threshold: %+v", spec)
	}
	if spec.BrainScript == "" {
		t.Fatalf("enemy spec names no brain script")
	}
	if _, err := LoadScript(spec.BrainScript); err != nil {
		t.Fatalf("brain script %q not loadable: %v", spec.BrainScript, err)
	}
	if spec.Soggy.SpeedFactor <= 0 || spec.Soggy.DurationFrames == 0 {
		t.Fatalf("enemy spec missing soggy tuning: %+v", spec.Soggy)
	}
}

func TestLoadInputSpec(t *testing.T) {
	spec, err := LoadInputSpec()
	if err != nil {
		t.Fatalf("LoadInputSpec: %v", err)
	}
	if spec.Deadzone <= 0 || spec.Deadzone >= 1 {
		t.Fatalf("deadzone = %v, want (0, 1)", spec.Deadzone)
	}
	if len(spec.Keymap) == 0 {
		t.Fatalf("input spec has no keymap")
	}
}

func TestLoadSpecUnknownFile(t *testing.T) {
	if _, err := LoadSpec[PlayerSpec]("missing.yaml"); err == nil {
		t.Fatalf("loading a missing spec should error")
	}
}
