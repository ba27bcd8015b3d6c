package obj

import (
	"testing"

	"driftwood/common"
	"driftwood/levels"
)

func testLevel() *levels.Level {
	return &levels.Level{
		Name: "test",
		Rows: []string{
			"........",
			"........",
			"..##....",
			"........",
			"####^###",
		},
	}
}

func TestSolidAtRect(t *testing.T) {
	w := NewCollisionWorld(testLevel())
	ts := float64(common.TileSize)

	cases := []struct {
		name string
		rect common.Rect
		want bool
	}{
		{"open air", common.Rect{X: 10, Y: 10, Width: 12, Height: 12}, false},
		{"inside platform", common.Rect{X: 2*ts + 4, Y: 2*ts + 4, Width: 8, Height: 8}, true},
		{"straddling platform edge", common.Rect{X: 2*ts - 6, Y: 2*ts + 4, Width: 12, Height: 8}, true},
		{"over hazard gap", common.Rect{X: 4*ts + 4, Y: 4*ts + 4, Width: 8, Height: 8}, false},
		{"floor", common.Rect{X: 4, Y: 4*ts + 4, Width: 8, Height: 8}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := w.SolidAtRect(c.rect); got != c.want {
				t.Fatalf("SolidAtRect(%+v) = %v, want %v", c.rect, got, c.want)
			}
		})
	}
}

func TestAddRemoveActor(t *testing.T) {
	w := NewCollisionWorld(testLevel())

	a := w.AddActor(common.Vec2{X: 50, Y: 50}, 32, 32, collisionTypePlayer)
	if got := a.Pos(); got.X != 50 || got.Y != 50 {
		t.Fatalf("actor spawned at %+v, want (50, 50)", got)
	}
	if len(w.actors) != 1 {
		t.Fatalf("world should track 1 actor, has %d", len(w.actors))
	}

	w.RemoveActor(a)
	if len(w.actors) != 0 || len(w.shapeToActor) != 0 {
		t.Fatalf("remove should clear bookkeeping, actors=%d shapes=%d", len(w.actors), len(w.shapeToActor))
	}
	// removing twice is harmless
	w.RemoveActor(a)
}

func TestActorVelocityOverrides(t *testing.T) {
	w := NewCollisionWorld(testLevel())
	a := w.AddActor(common.Vec2{X: 50, Y: 50}, 32, 32, collisionTypePlayer)

	a.SetVelocityY(-300)
	a.SetVelocityX(120)
	v := a.Velocity()
	if v.X != 120 || v.Y != -300 {
		t.Fatalf("velocity = %+v, want (120, -300); axis overrides must not clobber each other", v)
	}

	a.Teleport(common.Vec2{X: 99, Y: 11})
	if v := a.Velocity(); v.X != 0 || v.Y != 0 {
		t.Fatalf("teleport should zero velocity, got %+v", v)
	}
	if p := a.Pos(); p.X != 99 || p.Y != 11 {
		t.Fatalf("teleport moved to %+v, want (99, 11)", p)
	}
}

func TestGroundGraceDecays(t *testing.T) {
	w := NewCollisionWorld(testLevel())
	a := w.AddActor(common.Vec2{X: 50, Y: 50}, 32, 32, collisionTypePlayer)

	a.State.groundGrace = groundGraceFrames
	for i := 0; i < groundGraceFrames; i++ {
		w.Step(1.0 / common.TPS)
		// mid-air: nothing re-arms the grace
		a.Body.SetVelocityVector(a.Body.Velocity().Mult(0))
	}
	if a.State.Grounded {
		t.Fatalf("grace should have decayed to airborne after %d steps", groundGraceFrames)
	}
}
