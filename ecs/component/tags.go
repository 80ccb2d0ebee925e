package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// PogoStickTag marks an entity whose collider carries the ground-contact shape.
type PogoStickTag struct{}

var PogoStickTagComponent = NewComponent[PogoStickTag]()

type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()

type FloorTag struct{}

var FloorTagComponent = NewComponent[FloorTag]()
