package component

import "github.com/jakecoffman/cp"

// ShapeKind enumerates the supported collision shapes.
type ShapeKind int

const (
	ShapeCuboid ShapeKind = iota
	ShapeSphere
	ShapeCapsule
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCuboid:
		return "cuboid"
	case ShapeSphere:
		return "sphere"
	case ShapeCapsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// ColliderShape is one shape record attached to its entity's rigid body.
// Offsets are in the body's local frame.
type ColliderShape struct {
	Kind ShapeKind
	// Cuboid
	HalfWidth    float64
	HalfHeight   float64
	BorderRadius float64
	// Sphere and capsule
	Radius float64
	// Capsule: half the length of the inner vertical segment.
	HalfSegment float64

	OffsetX float64
	OffsetY float64

	Layers CollisionLayers
	// PogoStick marks the ground-contact shape.
	PogoStick bool

	Shape *cp.Shape
}

// Collider is the arena of shapes owned by one rigid body.
type Collider struct {
	Shapes []ColliderShape
}

// PogoStick returns the index of the ground-contact shape.
func (c *Collider) PogoStick() (int, bool) {
	if c == nil {
		return -1, false
	}
	for i := range c.Shapes {
		if c.Shapes[i].PogoStick {
			return i, true
		}
	}
	return -1, false
}

var ColliderComponent = NewComponent[Collider]()
