package component

import "github.com/jakecoffman/cp"

// BodyKind selects how the physics step treats a rigid body.
type BodyKind int

const (
	// BodyStatic never moves and never receives velocity.
	BodyStatic BodyKind = iota
	// BodyDynamic is integrated under gravity and collision response.
	BodyDynamic
)

func (k BodyKind) String() string {
	switch k {
	case BodyStatic:
		return "static"
	case BodyDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// RigidBody stores Chipmunk2D runtime data and body configuration. The
// physics system fills Body on first sync.
type RigidBody struct {
	Kind       BodyKind
	Mass       float64
	Friction   float64
	Elasticity float64
	// LockRotation gives the body an infinite moment so contacts never spin
	// it; only systems writing Transform.Rotation turn it.
	LockRotation bool

	Body *cp.Body
}

var RigidBodyComponent = NewComponent[RigidBody]()

// Velocity is the linear velocity of a dynamic body in units per second.
type Velocity struct {
	X float64
	Y float64
}

// Vector returns the velocity as a Chipmunk vector.
func (v Velocity) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Set overwrites the velocity from a Chipmunk vector.
func (v *Velocity) Set(vec cp.Vector) {
	v.X = vec.X
	v.Y = vec.Y
}

var VelocityComponent = NewComponent[Velocity]()
