package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/milk9111/pogo/prefabs"
)

// Every shape shares one collision type; layer filtering happens through
// shape filters, so a single handler sees every contact that survives it.
const collisionTypeBody cp.CollisionType = 1

// PhysicsConfig tunes the Chipmunk space.
type PhysicsConfig struct {
	Gravity    float64
	TPS        int
	Iterations int
}

func PhysicsConfigFromSpec(spec prefabs.PhysicsSpec) PhysicsConfig {
	return PhysicsConfig{Gravity: spec.Gravity, TPS: spec.TPS, Iterations: spec.Iterations}
}

func (c PhysicsConfig) dt() float64 {
	if c.TPS <= 0 {
		return 1.0 / prefabs.DefaultTPS
	}
	return 1.0 / float64(c.TPS)
}

// PhysicsSystem mirrors rigid-body entities into a Chipmunk space, steps it
// once per tick and reports contact begin/separate as collision events.
type PhysicsSystem struct {
	space         *cp.Space
	config        PhysicsConfig
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	pending  []ecs.CollisionEvent
	// impacts holds the pre-solve velocity of player bodies whose player
	// shape started a contact during the current step.
	impacts map[*cp.Body]cp.Vector
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

// ShapeOwner is stored in every cp.Shape's UserData.
type ShapeOwner struct {
	Entity    ecs.Entity
	Layers    component.CollisionLayers
	PogoStick bool
}

func NewPhysicsSystem(config PhysicsConfig) *PhysicsSystem {
	ps := &PhysicsSystem{
		entities: make(map[ecs.Entity]*bodyInfo),
		impacts:  make(map[*cp.Body]cp.Vector),
	}
	ps.SetConfig(config)
	return ps
}

// SetConfig applies gravity, iterations and tick rate. Safe between ticks.
func (ps *PhysicsSystem) SetConfig(config PhysicsConfig) {
	if config.Iterations <= 0 {
		config.Iterations = prefabs.DefaultIterations
	}
	ps.config = config
	if ps.space == nil {
		ps.space = cp.NewSpace()
	}
	ps.space.Iterations = uint(config.Iterations)
	ps.space.SetGravity(cp.Vector{X: 0, Y: -config.Gravity})
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Dt returns the fixed step length in seconds.
func (ps *PhysicsSystem) Dt() float64 {
	return ps.config.dt()
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.pushState(w)

	ps.pending = ps.pending[:0]
	clear(ps.impacts)
	ps.space.Step(ps.config.dt())

	ps.pullState(w)

	queue := w.Collisions()
	for _, evt := range ps.pending {
		queue.Push(evt)
	}
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeBody, collisionTypeBody)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.recordContact(arb, true)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.recordContact(arb, false)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) recordContact(arb *cp.Arbiter, started bool) {
	shapeA, shapeB := arb.Shapes()
	ownerA, okA := shapeA.UserData.(ShapeOwner)
	ownerB, okB := shapeB.UserData.(ShapeOwner)
	if !okA || !okB {
		return
	}
	if started {
		ps.recordImpact(ownerA)
		ps.recordImpact(ownerB)
	}
	ps.pending = append(ps.pending, ecs.CollisionEvent{
		A:       ecs.Participant{Entity: ownerA.Entity, Layers: ownerA.Layers},
		B:       ecs.Participant{Entity: ownerB.Entity, Layers: ownerB.Layers},
		Started: started,
	})
}

// recordImpact keeps the velocity a player body had when its player shape
// first touched something this step. Begin runs before the solver, so this
// is the incoming velocity the bounce response works from rather than the
// velocity left after Chipmunk resolved the contact.
func (ps *PhysicsSystem) recordImpact(owner ShapeOwner) {
	if !owner.Layers.IsPlayer() {
		return
	}
	info := ps.entities[owner.Entity]
	if info == nil || info.static {
		return
	}
	if _, seen := ps.impacts[info.body]; !seen {
		ps.impacts[info.body] = info.body.Velocity()
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach3(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, rb *component.RigidBody, transform *component.Transform, collider *component.Collider) {
			if _, ok := ps.entities[e]; ok {
				return
			}
			info := ps.createBodyInfo(e, rb, transform, collider)
			if info == nil {
				return
			}
			ps.entities[e] = info
		})
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, rb *component.RigidBody, transform *component.Transform, collider *component.Collider) *bodyInfo {
	if len(collider.Shapes) == 0 {
		return nil
	}

	info := &bodyInfo{static: rb.Kind == component.BodyStatic}

	// Static shapes hang off the space's static body in world coordinates.
	var origin cp.Vector
	if info.static {
		info.body = ps.space.StaticBody
		origin = cp.Vector{X: transform.X, Y: transform.Y}
	} else {
		mass := rb.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := cp.INFINITY
		if !rb.LockRotation {
			moment = momentForShapes(mass, collider.Shapes)
		}
		info.body = ps.space.AddBody(cp.NewBody(mass, moment))
		info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		info.body.SetAngle(transform.Rotation)
	}

	for i := range collider.Shapes {
		rec := &collider.Shapes[i]
		shape := newShape(info.body, origin, rec)
		shape.SetFriction(rb.Friction)
		shape.SetElasticity(rb.Elasticity)
		shape.SetCollisionType(collisionTypeBody)
		shape.SetFilter(rec.Layers.Filter())
		shape.UserData = ShapeOwner{Entity: e, Layers: rec.Layers, PogoStick: rec.PogoStick}
		ps.space.AddShape(shape)

		rec.Shape = shape
		info.shapes = append(info.shapes, shape)
	}

	rb.Body = info.body
	return info
}

func newShape(body *cp.Body, origin cp.Vector, rec *component.ColliderShape) *cp.Shape {
	offset := cp.Vector{X: origin.X + rec.OffsetX, Y: origin.Y + rec.OffsetY}
	switch rec.Kind {
	case component.ShapeSphere:
		return cp.NewCircle(body, rec.Radius, offset)
	case component.ShapeCapsule:
		a := cp.Vector{X: offset.X, Y: offset.Y - rec.HalfSegment}
		b := cp.Vector{X: offset.X, Y: offset.Y + rec.HalfSegment}
		return cp.NewSegment(body, a, b, rec.Radius)
	default:
		bb := cp.BB{
			L: offset.X - rec.HalfWidth,
			B: offset.Y - rec.HalfHeight,
			R: offset.X + rec.HalfWidth,
			T: offset.Y + rec.HalfHeight,
		}
		return cp.NewBox2(body, bb, rec.BorderRadius)
	}
}

func momentForShapes(mass float64, shapes []component.ColliderShape) float64 {
	share := mass / float64(len(shapes))
	var moment float64
	for _, s := range shapes {
		offset := cp.Vector{X: s.OffsetX, Y: s.OffsetY}
		switch s.Kind {
		case component.ShapeSphere:
			moment += cp.MomentForCircle(share, 0, s.Radius, offset)
		case component.ShapeCapsule:
			a := cp.Vector{X: offset.X, Y: offset.Y - s.HalfSegment}
			b := cp.Vector{X: offset.X, Y: offset.Y + s.HalfSegment}
			moment += cp.MomentForSegment(share, a, b, s.Radius)
		default:
			moment += cp.MomentForBox(share, s.HalfWidth*2, s.HalfHeight*2) + share*offset.LengthSq()
		}
	}
	return moment
}

// pushState copies ECS velocity and rotation into dynamic bodies so writes
// made by systems during the previous tick take effect in this step.
func (ps *PhysicsSystem) pushState(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			if info.body.Angle() != transform.Rotation {
				info.body.SetAngle(transform.Rotation)
			}
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			info.body.SetVelocityVector(vel.Vector())
		}
	}
}

func (ps *PhysicsSystem) pullState(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		if rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind()); ok && !rb.LockRotation {
			transform.Rotation = info.body.Angle()
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			if impact, hit := ps.impacts[info.body]; hit {
				vel.Set(impact)
			} else {
				vel.Set(info.body.Velocity())
			}
		}
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.RigidBodyComponent.Kind()) && ecs.Has(w, e, component.ColliderComponent.Kind()) {
			continue
		}

		for _, shape := range info.shapes {
			if shape != nil {
				ps.space.RemoveShape(shape)
			}
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
	}
}
