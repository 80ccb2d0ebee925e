package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

var depthAxis = mgl64.Vec3{0, 0, 1}

// OrientationFromAngle returns the unit quaternion rotating by rotation
// radians about the depth axis.
func OrientationFromAngle(rotation float64) mgl64.Quat {
	return mgl64.QuatRotate(rotation, depthAxis)
}

// AngleFromOrientation extracts the planar bounce angle from a quaternion
// restricted to the depth axis (x = y = 0). The sign follows z: a
// non-negative z yields the negated half-angle sum. Bounce tuning depends
// on this exact branch; do not swap it for atan2.
func AngleFromOrientation(q mgl64.Quat) float64 {
	a := 2 * math.Acos(Clamp(q.W, -1, 1))
	if q.V.Z() >= 0 {
		return -a
	}
	return a
}

// DirectionFromAngle returns a vector of the given magnitude where theta = 0
// points along +Y.
func DirectionFromAngle(theta, magnitude float64) cp.Vector {
	return cp.Vector{X: math.Sin(theta) * magnitude, Y: math.Cos(theta) * magnitude}
}

// NormalizeOrZero returns the unit vector of v, or the zero vector when v
// has no length.
func NormalizeOrZero(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
