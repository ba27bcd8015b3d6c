// Package obj holds the plain game objects: player, enemies, camera,
// level rendering and the collision world they all share.
package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"driftwood/common"
	"driftwood/levels"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeHazard
	collisionTypePlayer
	collisionTypeEnemy
)

// groundGraceFrames smooths grounded detection across solver jitter.
const groundGraceFrames = 4

// ActorState is written by collision handlers during Step and read by the
// owning actor afterwards.
type ActorState struct {
	Grounded       bool
	groundGrace    int
	TouchingHazard bool
}

// Actor is a dynamic body in the collision world.
type Actor struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width, Height float64
	State         ActorState
}

// Pos returns the actor's center in world pixels.
func (a *Actor) Pos() common.Vec2 {
	p := a.Body.Position()
	return common.Vec2{X: p.X, Y: p.Y}
}

// Bounds returns the actor's AABB.
func (a *Actor) Bounds() common.Rect {
	p := a.Body.Position()
	return common.Rect{
		X:     p.X - a.Width/2,
		Y:     p.Y - a.Height/2,
		Width: a.Width, Height: a.Height,
	}
}

// SetVelocityX overrides horizontal speed, keeping the solver's vertical.
func (a *Actor) SetVelocityX(vx float64) {
	v := a.Body.Velocity()
	a.Body.SetVelocityVector(cp.Vector{X: vx, Y: v.Y})
}

// SetVelocityY overrides vertical speed, e.g. for a jump impulse.
func (a *Actor) SetVelocityY(vy float64) {
	v := a.Body.Velocity()
	a.Body.SetVelocityVector(cp.Vector{X: v.X, Y: vy})
}

func (a *Actor) Velocity() common.Vec2 {
	v := a.Body.Velocity()
	return common.Vec2{X: v.X, Y: v.Y}
}

// Teleport moves the actor and zeroes its velocity, for respawns.
func (a *Actor) Teleport(pos common.Vec2) {
	a.Body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	a.Body.SetVelocityVector(cp.Vector{})
}

// CollisionWorld owns the Chipmunk space, the static tile shapes and the
// registered actors.
type CollisionWorld struct {
	level *levels.Level
	space *cp.Space

	shapeToActor map[*cp.Shape]*Actor
	actors       []*Actor
}

// NewCollisionWorld builds a space from the level's solid and hazard
// tiles, with border segments so nothing escapes the map.
func NewCollisionWorld(level *levels.Level) *CollisionWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	w := &CollisionWorld{
		level:        level,
		space:        space,
		shapeToActor: make(map[*cp.Shape]*Actor),
	}
	w.buildStaticShapes()
	w.setupHandlers()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *CollisionWorld) Space() *cp.Space { return w.space }

// AddActor registers a dynamic box body centered at pos.
func (w *CollisionWorld) AddActor(pos common.Vec2, width, height float64, kind cp.CollisionType) *Actor {
	body := cp.NewBody(1, math.Inf(1)) // infinite moment: no rotation
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(kind)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	actor := &Actor{Body: body, Shape: shape, Width: width, Height: height}
	w.shapeToActor[shape] = actor
	w.actors = append(w.actors, actor)
	return actor
}

// RemoveActor detaches a body from the space, e.g. on enemy death.
func (w *CollisionWorld) RemoveActor(a *Actor) {
	if a == nil {
		return
	}
	delete(w.shapeToActor, a.Shape)
	w.space.RemoveShape(a.Shape)
	w.space.RemoveBody(a.Body)
	for i, actor := range w.actors {
		if actor == a {
			w.actors = append(w.actors[:i], w.actors[i+1:]...)
			break
		}
	}
}

// Step advances the simulation. Per-actor contact state is rebuilt by the
// collision handlers during the step.
func (w *CollisionWorld) Step(dt float64) {
	for _, a := range w.actors {
		if a.State.groundGrace > 0 {
			a.State.groundGrace--
		}
		a.State.Grounded = a.State.groundGrace > 0
		a.State.TouchingHazard = false
	}
	w.space.Step(dt)
}

// SolidAtRect reports whether any solid tile overlaps the rect. Projectiles
// use this instead of full bodies.
func (w *CollisionWorld) SolidAtRect(r common.Rect) bool {
	left := int(math.Floor(r.X / common.TileSize))
	top := int(math.Floor(r.Y / common.TileSize))
	right := int(math.Floor((r.X + r.Width - 1) / common.TileSize))
	bottom := int(math.Floor((r.Y + r.Height - 1) / common.TileSize))
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if w.level.Solid(x, y) {
				return true
			}
		}
	}
	return false
}

func (w *CollisionWorld) buildStaticShapes() {
	width, height := w.level.Width(), w.level.Height()

	// merge horizontal runs of solid tiles into single boxes
	processed := make([]bool, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if processed[idx] {
				continue
			}
			processed[idx] = true

			x0 := float64(x * common.TileSize)
			y0 := float64(y * common.TileSize)

			if w.level.Hazard(x, y) {
				bb := cp.BB{L: x0, B: y0, R: x0 + common.TileSize, T: y0 + common.TileSize}
				shape := cp.NewBox2(w.space.StaticBody, bb, 0)
				shape.SetSensor(true)
				shape.SetCollisionType(collisionTypeHazard)
				w.space.AddShape(shape)
				continue
			}
			if !w.level.Solid(x, y) {
				continue
			}

			run := 1
			for x+run < width && !processed[y*width+x+run] && w.level.Solid(x+run, y) {
				processed[y*width+x+run] = true
				run++
			}
			bb := cp.BB{L: x0, B: y0, R: x0 + float64(run*common.TileSize), T: y0 + common.TileSize}
			shape := cp.NewBox2(w.space.StaticBody, bb, 0)
			shape.SetFriction(0.8)
			shape.SetCollisionType(collisionTypeSolid)
			w.space.AddShape(shape)
		}
	}

	worldW := float64(width * common.TileSize)
	worldH := float64(height * common.TileSize)
	borders := []struct{ a, b cp.Vector }{
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: worldW, Y: 0}},
		{cp.Vector{X: 0, Y: worldH}, cp.Vector{X: worldW, Y: worldH}},
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: worldH}},
		{cp.Vector{X: worldW, Y: 0}, cp.Vector{X: worldW, Y: worldH}},
	}
	for _, seg := range borders {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		w.space.AddShape(shape)
	}
}

func (w *CollisionWorld) setupHandlers() {
	ground := func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		shapeA, shapeB := arb.Shapes()
		actor, n := w.shapeToActor[shapeA], arb.Normal()
		if actor == nil {
			actor = w.shapeToActor[shapeB]
			n = n.Neg()
		}
		if actor == nil {
			return true
		}
		// contact normal pointing up (screen Y grows down) means the
		// actor is standing on something
		if n.Y > 0.7 {
			actor.State.Grounded = true
			actor.State.groundGrace = groundGraceFrames
		}
		return true
	}
	for _, kind := range []cp.CollisionType{collisionTypePlayer, collisionTypeEnemy} {
		h := w.space.NewCollisionHandler(kind, collisionTypeSolid)
		h.PreSolveFunc = ground
	}

	hazard := func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		shapeA, shapeB := arb.Shapes()
		if actor := w.shapeToActor[shapeA]; actor != nil {
			actor.State.TouchingHazard = true
		}
		if actor := w.shapeToActor[shapeB]; actor != nil {
			actor.State.TouchingHazard = true
		}
		return true
	}
	for _, kind := range []cp.CollisionType{collisionTypePlayer, collisionTypeEnemy} {
		h := w.space.NewCollisionHandler(kind, collisionTypeHazard)
		h.PreSolveFunc = hazard
	}

	// the player walks through enemies; damage goes through hit regions
	pe := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeEnemy)
	pe.PreSolveFunc = func(*cp.Arbiter, *cp.Space, interface{}) bool { return false }
}
