package obj

import (
	"testing"

	"driftwood/prefabs"
)

func TestBrainPatrolAndChase(t *testing.T) {
	src := []byte(`
move_x := patrol_dir
chasing := false
if dist <= follow_range && !soggy {
	chasing = true
	if dx < 0 {
		move_x = -1
	} else {
		move_x = 1
	}
}
`)
	b, err := NewBrain(src)
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}

	d, err := b.Think(BrainInput{DX: 500, Dist: 500, FollowRange: 240, PatrolDir: -1})
	if err != nil {
		t.Fatalf("Think: %v", err)
	}
	if d.MoveX != -1 || d.Chasing {
		t.Fatalf("out of range should patrol, got %+v", d)
	}

	d, err = b.Think(BrainInput{DX: -100, Dist: 100, FollowRange: 240, PatrolDir: 1})
	if err != nil {
		t.Fatalf("Think: %v", err)
	}
	if d.MoveX != -1 || !d.Chasing {
		t.Fatalf("in range should chase toward player, got %+v", d)
	}

	d, err = b.Think(BrainInput{DX: -100, Dist: 100, FollowRange: 240, PatrolDir: 1, Soggy: true})
	if err != nil {
		t.Fatalf("Think: %v", err)
	}
	if d.Chasing {
		t.Fatalf("soggy crab should not chase, got %+v", d)
	}
}

func TestBrainClampsMove(t *testing.T) {
	b, err := NewBrain([]byte(`move_x := 5`))
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	d, err := b.Think(BrainInput{})
	if err != nil {
		t.Fatalf("Think: %v", err)
	}
	if d.MoveX != 1 {
		t.Fatalf("move_x should clamp to 1, got %d", d.MoveX)
	}
}

func TestBrainRejectsBadScript(t *testing.T) {
	if _, err := NewBrain([]byte(`move_x := {`)); err == nil {
		t.Fatalf("expected a compile error")
	}
}

func TestCrabScriptCompilesAndDecides(t *testing.T) {
	src, err := prefabs.LoadScript("crab.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	b, err := NewBrain(src)
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	d, err := b.Think(BrainInput{DX: 50, Dist: 50, FollowRange: 240, PatrolDir: -1})
	if err != nil {
		t.Fatalf("Think: %v", err)
	}
	if d.MoveX != 1 || !d.Chasing {
		t.Fatalf("crab in range should chase right, got %+v", d)
	}
}
