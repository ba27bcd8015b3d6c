package obj

import (
	"testing"

	"driftwood/common"
	"driftwood/prefabs"
	"driftwood/status"
)

func testEnemySpec() *prefabs.EnemySpec {
	return &prefabs.EnemySpec{
		Name:          "crab",
		MoveSpeed:     110,
		Health:        6,
		SaturationMax: 100,
		FollowRange:   240,
		Collider:      prefabs.ColliderSpec{Width: 36, Height: 28},
		Soggy: prefabs.SoggySpec{
			DurationFrames: 300,
			SpeedFactor:    0.5,
			DamageFactor:   1.5,
		},
	}
}

func newTestEnemy(t *testing.T) *Enemy {
	t.Helper()
	brain, err := NewBrain([]byte(`move_x := patrol_dir`))
	if err != nil {
		t.Fatalf("NewBrain: %v", err)
	}
	world := NewCollisionWorld(testLevel())
	return NewEnemy(testEnemySpec(), brain, world, common.Vec2{X: 100, Y: 100})
}

func TestApplyHitSaturationTipsSoggy(t *testing.T) {
	e := newTestEnemy(t)

	e.ApplyHit(2, 60)
	if e.Effects().HasEffect(status.TypeSoggy) {
		t.Fatalf("60 saturation is under the 100 threshold")
	}
	if e.Health() != 4 {
		t.Fatalf("health = %v, want 4", e.Health())
	}

	e.ApplyHit(2, 60)
	if !e.Effects().HasEffect(status.TypeSoggy) {
		t.Fatalf("crossing the threshold should apply soggy")
	}
	if e.MoveSpeed() != 55 {
		t.Fatalf("soggy move speed = %v, want 55", e.MoveSpeed())
	}
	if e.Saturation().Value() != 0 {
		t.Fatalf("meter should reset on crossing, value = %v", e.Saturation().Value())
	}
}

func TestSoggyAmplifiesDamage(t *testing.T) {
	e := newTestEnemy(t)

	e.ApplyHit(1, 100) // tips soggy, health 5
	e.ApplyHit(2, 0)   // 2 * 1.5 = 3, health 2
	if e.Health() != 2 {
		t.Fatalf("health = %v, want 2 after the amplified hit", e.Health())
	}
}

func TestDeathClearsEffectsAndBody(t *testing.T) {
	e := newTestEnemy(t)

	e.ApplyHit(1, 100) // soggy, speed 55
	e.ApplyHit(10, 0)
	if !e.Dead() {
		t.Fatalf("lethal hit should kill")
	}
	if e.MoveSpeed() != 110 {
		t.Fatalf("death teardown must restore move speed, got %v", e.MoveSpeed())
	}
	if len(e.world.actors) != 0 {
		t.Fatalf("dead enemy should leave the collision world")
	}

	// further hits on a corpse are ignored
	e.ApplyHit(5, 50)
	if e.Saturation().Value() != 0 {
		t.Fatalf("corpse must not accumulate saturation")
	}
}

func TestEnemyPatrolsWhenPlayerFar(t *testing.T) {
	e := newTestEnemy(t)
	e.Update(common.Vec2{X: 5000, Y: 100})
	if v := e.actor.Velocity().X; v != 110 && v != -110 {
		t.Fatalf("far player should leave the crab patrolling, velocity = %v", v)
	}
	if e.chasing {
		t.Fatalf("far player must not trigger a chase")
	}
}
