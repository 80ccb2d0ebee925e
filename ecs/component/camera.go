package component

type Camera struct {
	// Depth is written to the camera transform's Z every tick.
	Depth float64
	Zoom  float64
}

var CameraComponent = NewComponent[Camera]()
