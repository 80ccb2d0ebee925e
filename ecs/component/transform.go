package component

// Transform is a planar position plus a depth value and a rotation about
// the depth axis, in radians, counter-clockwise positive. The world is Y-up.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
