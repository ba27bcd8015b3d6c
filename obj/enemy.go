package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"driftwood/common"
	"driftwood/logging"
	"driftwood/prefabs"
	"driftwood/status"
)

var nextEnemyID int

// Enemy is a scripted walker. Its per-tick decision comes from a tengo
// brain; saturation buildup from water weapons eventually tips it soggy.
type Enemy struct {
	id   int
	spec *prefabs.EnemySpec

	actor *Actor
	world *CollisionWorld

	brain   *Brain
	effects *status.Manager
	meter   *status.Meter

	moveSpeed float64
	health    float64
	patrolDir int
	chasing   bool
	dead      bool

	img *ebiten.Image
}

func NewEnemy(spec *prefabs.EnemySpec, brain *Brain, world *CollisionWorld, pos common.Vec2) *Enemy {
	nextEnemyID++
	e := &Enemy{
		id:        nextEnemyID,
		spec:      spec,
		world:     world,
		brain:     brain,
		meter:     status.NewMeter(spec.SaturationMax),
		moveSpeed: spec.MoveSpeed,
		health:    spec.Health,
		patrolDir: 1,
	}
	e.effects = status.NewManager(e)
	e.actor = world.AddActor(pos, spec.Collider.Width, spec.Collider.Height, collisionTypeEnemy)
	return e
}

// ID keys per-target hit bookkeeping in weapon regions.
func (e *Enemy) ID() int { return e.id }

func (e *Enemy) Pos() common.Vec2 { return e.actor.Pos() }

// Hurtbox is the rect weapon hits are tested against.
func (e *Enemy) Hurtbox() common.Rect { return e.actor.Bounds() }

func (e *Enemy) Dead() bool { return e.dead }

func (e *Enemy) Health() float64 { return e.health }

func (e *Enemy) Saturation() *status.Meter { return e.meter }

func (e *Enemy) Effects() *status.Manager { return e.effects }

// MoveSpeed implements status.Target.
func (e *Enemy) MoveSpeed() float64 { return e.moveSpeed }

// SetMoveSpeed implements status.Target.
func (e *Enemy) SetMoveSpeed(speed float64) { e.moveSpeed = speed }

// TakeDamage implements status.Damageable. Periodic effects route through
// here as well as direct hits.
func (e *Enemy) TakeDamage(amount float64) {
	if e.dead {
		return
	}
	e.health -= amount
	if e.health <= 0 {
		e.die()
	}
}

// ApplyHit resolves one weapon hit: damage scaled by the soggy multiplier,
// then saturation buildup that can tip the enemy into the soggy state.
func (e *Enemy) ApplyHit(damage, saturation float64) {
	if e.dead {
		return
	}
	if eff, ok := e.effects.GetEffect(status.TypeSoggy); ok {
		if soggy, ok := eff.(*status.Soggy); ok {
			damage *= soggy.DamageMultiplier()
		}
	}
	e.TakeDamage(damage)
	if e.dead {
		return
	}
	if e.meter.Add(saturation) {
		s := e.spec.Soggy
		e.effects.ApplyEffect(status.NewSoggy(s.DurationFrames, s.SpeedFactor, s.DamageFactor))
	}
}

func (e *Enemy) die() {
	e.dead = true
	e.effects.Clear()
	e.world.RemoveActor(e.actor)
}

// SetBrain swaps in a recompiled behavior script.
func (e *Enemy) SetBrain(b *Brain) {
	if b != nil {
		e.brain = b
	}
}

func (e *Enemy) Update(playerPos common.Vec2) {
	if e.dead {
		return
	}

	e.effects.Update()

	// flip patrol direction at ledges and walls
	if e.actor.State.Grounded && e.wallOrLedgeAhead() {
		e.patrolDir = -e.patrolDir
	}

	pos := e.actor.Pos()
	dx := playerPos.X - pos.X
	dist := math.Hypot(dx, playerPos.Y-pos.Y)

	decision, err := e.brain.Think(BrainInput{
		DX:          dx,
		Dist:        dist,
		FollowRange: e.spec.FollowRange,
		PatrolDir:   e.patrolDir,
		Soggy:       e.effects.HasEffect(status.TypeSoggy),
	})
	if err != nil {
		logging.L.Warnw("brain script failed, falling back to patrol",
			"enemy", e.spec.Name, "error", err)
		decision = Decision{MoveX: e.patrolDir}
	}

	e.chasing = decision.Chasing
	e.actor.SetVelocityX(float64(decision.MoveX) * e.moveSpeed)
}

// wallOrLedgeAhead probes one half tile past the leading edge: blocked if
// that spot is solid, or a ledge if the tile below it is not.
func (e *Enemy) wallOrLedgeAhead() bool {
	b := e.actor.Bounds()
	probeX := b.X + b.Width + common.TileSize/2
	if e.patrolDir < 0 {
		probeX = b.X - common.TileSize/2
	}
	tx := int(math.Floor(probeX / common.TileSize))
	ty := int(math.Floor((b.Y + b.Height/2) / common.TileSize))
	footY := int(math.Floor((b.Y + b.Height + 1) / common.TileSize))

	if e.world.level.Solid(tx, ty) {
		return true
	}
	return !e.world.level.Solid(tx, footY)
}

func (e *Enemy) Draw(screen *ebiten.Image, cam *Camera) {
	if e.dead {
		return
	}
	if e.img == nil {
		e.img = ebiten.NewImage(int(e.spec.Collider.Width), int(e.spec.Collider.Height))
		e.img.Fill(colornames.Indianred)
	}

	b := e.actor.Bounds()
	sx, sy := cam.WorldToScreen(common.Vec2{X: b.X, Y: b.Y})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sx, sy)
	if e.effects.HasEffect(status.TypeSoggy) {
		// waterlogged tint
		op.ColorScale.Scale(0.5, 0.6, 1, 1)
	}
	screen.DrawImage(e.img, op)
}
