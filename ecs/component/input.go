package component

// Input stores per-tick turn key state for an entity.
type Input struct {
	TurnLeft  bool
	TurnRight bool
}

var InputComponent = NewComponent[Input]()
