package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"driftwood/common"
	"driftwood/input"
	"driftwood/prefabs"
	"driftwood/status"
	"driftwood/weapon"
)

const (
	respawnInvulnFrames = 60

	// hazard aftermath: drip damage once the respawn invulnerability ends
	hazardDripFrames   = 180
	hazardDripInterval = 90
)

// Player consumes the resolved action state and drives movement, jump
// grace windows and combat input.
type Player struct {
	spec    *prefabs.PlayerSpec
	mapper  *input.Mapper
	weapons *weapon.Manager
	effects *status.Manager

	actor *Actor
	world *CollisionWorld
	spawn common.Vec2

	moveSpeed float64
	health    float64

	facingRight  bool
	coyoteTimer  int
	bufferTimer  int
	doubleJumped bool
	prevGrounded bool
	invulnFrames int
	deaths       int

	img *ebiten.Image
}

// NewPlayer builds the player at the level spawn. The managers are
// constructed by the caller and passed in explicitly.
func NewPlayer(
	spec *prefabs.PlayerSpec,
	mapper *input.Mapper,
	weapons *weapon.Manager,
	world *CollisionWorld,
	spawn common.Vec2,
) *Player {
	p := &Player{
		spec:        spec,
		mapper:      mapper,
		weapons:     weapons,
		world:       world,
		spawn:       spawn,
		moveSpeed:   spec.MoveSpeed,
		health:      spec.Health,
		facingRight: true,
	}
	p.effects = status.NewManager(p)
	p.actor = world.AddActor(spawn, spec.Collider.Width, spec.Collider.Height, collisionTypePlayer)
	weapons.AttachOwner(p)
	return p
}

// Effects returns the player's status effect manager.
func (p *Player) Effects() *status.Manager { return p.effects }

// Weapons returns the weapon manager.
func (p *Player) Weapons() *weapon.Manager { return p.weapons }

// Muzzle implements weapon.Owner: shots originate at the player's center.
func (p *Player) Muzzle() common.Vec2 { return p.actor.Pos() }

// MoveSpeed implements status.Target.
func (p *Player) MoveSpeed() float64 { return p.moveSpeed }

// SetMoveSpeed implements status.Target.
func (p *Player) SetMoveSpeed(speed float64) { p.moveSpeed = speed }

// TakeDamage implements status.Damageable.
func (p *Player) TakeDamage(amount float64) {
	if p.invulnFrames > 0 {
		return
	}
	p.health -= amount
	p.invulnFrames = respawnInvulnFrames
	if p.health <= 0 {
		p.health = p.spec.Health
		p.deaths++
		p.respawn()
	}
}

func (p *Player) Health() float64 { return p.health }

// Deaths counts full health depletions, for the shell's ad pacing.
func (p *Player) Deaths() int { return p.deaths }

func (p *Player) Pos() common.Vec2 { return p.actor.Pos() }

func (p *Player) Bounds() common.Rect { return p.actor.Bounds() }

// Aim returns the fire direction: horizontal facing adjusted by held
// up/down, normalized.
func (p *Player) Aim() common.Vec2 {
	x, y := p.mapper.Axis()
	aim := common.Vec2{X: float64(x), Y: float64(y)}
	if aim.X == 0 && aim.Y == 0 {
		if p.facingRight {
			return common.Vec2{X: 1}
		}
		return common.Vec2{X: -1}
	}
	return aim.Normalized()
}

func (p *Player) Update() {
	if p.invulnFrames > 0 {
		p.invulnFrames--
	}

	grounded := p.actor.State.Grounded

	x, _ := p.mapper.Axis()
	p.actor.SetVelocityX(float64(x) * p.moveSpeed)
	if x < 0 {
		p.facingRight = false
	} else if x > 0 {
		p.facingRight = true
	}

	p.updateJump(grounded)
	p.updateCombat()

	if p.actor.State.TouchingHazard {
		p.TakeDamage(1)
		// keep shedding health for a while after climbing out
		p.effects.ApplyEffect(status.NewDripping(hazardDripFrames, 1, hazardDripInterval))
		p.respawn()
	}

	p.prevGrounded = grounded
}

func (p *Player) updateJump(grounded bool) {
	// landing resets the double jump
	if grounded && !p.prevGrounded {
		p.doubleJumped = false
	}

	if grounded {
		p.coyoteTimer = p.spec.CoyoteFrames
	} else if p.coyoteTimer > 0 {
		p.coyoteTimer--
	}

	if p.mapper.IsActionJustPressed(input.ActionJump) {
		switch {
		case grounded || p.coyoteTimer > 0:
			p.jump()
		case p.spec.DoubleJump && !p.doubleJumped:
			p.doubleJumped = true
			p.actor.SetVelocityY(-p.spec.JumpSpeed)
		default:
			// too early: buffer the request and honor it on landing
			p.bufferTimer = p.spec.JumpBufferFrames
		}
	}

	if p.bufferTimer > 0 {
		p.bufferTimer--
		if grounded {
			p.bufferTimer = 0
			p.jump()
		}
	}
}

func (p *Player) jump() {
	p.coyoteTimer = 0
	p.actor.SetVelocityY(-p.spec.JumpSpeed)
}

func (p *Player) updateCombat() {
	if p.mapper.IsActionJustPressed(input.ActionWeaponNext) {
		p.weapons.Next()
	}
	if p.mapper.IsActionJustPressed(input.ActionWeaponPrev) {
		p.weapons.Previous()
	}

	aim := p.Aim()
	held := p.mapper.IsActionActive(input.ActionPrimaryFire)
	p.weapons.SetHeld(aim, held)
	if held {
		p.weapons.Fire(aim)
	}
	// the secondary trigger is a single-shot alternative, mostly for
	// gamepads where holding the face button is awkward
	if p.mapper.IsActionJustPressed(input.ActionSecondaryFire) {
		p.weapons.Fire(aim)
	}
}

func (p *Player) respawn() {
	p.actor.Teleport(p.spawn)
	p.coyoteTimer = 0
	p.bufferTimer = 0
	p.doubleJumped = false
}

// ReplaceWeapons swaps in a rebuilt inventory, e.g. after a spec reload.
// Any held trigger on the outgoing inventory is released first.
func (p *Player) ReplaceWeapons(m *weapon.Manager) {
	p.weapons.SetHeld(common.Vec2{}, false)
	p.weapons = m
	m.AttachOwner(p)
}

// Teardown removes lingering stat modifiers and releases held triggers,
// e.g. on level change.
func (p *Player) Teardown() {
	p.weapons.SetHeld(common.Vec2{}, false)
	p.effects.Clear()
}

func (p *Player) Draw(screen *ebiten.Image, cam *Camera) {
	if p.img == nil {
		p.img = ebiten.NewImage(int(p.spec.Collider.Width), int(p.spec.Collider.Height))
		p.img.Fill(colornames.Sandybrown)
	}

	b := p.actor.Bounds()
	sx, sy := cam.WorldToScreen(common.Vec2{X: b.X, Y: b.Y})
	op := &ebiten.DrawImageOptions{}
	if !p.facingRight {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(b.Width, 0)
	}
	op.GeoM.Translate(sx, sy)
	if p.invulnFrames%8 >= 4 {
		// blink while invulnerable
		op.ColorScale.ScaleAlpha(0.4)
	}
	screen.DrawImage(p.img, op)
}
