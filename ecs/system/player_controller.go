package system

import (
	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/milk9111/pogo/prefabs"
)

// PlayerControllerSystem turns the player by a fixed step per tick while a
// turn key is held. Left is checked first, so holding both turns left.
type PlayerControllerSystem struct {
	rotationSpeed float64
}

func NewPlayerControllerSystem(rotationSpeed float64) *PlayerControllerSystem {
	if rotationSpeed == 0 {
		rotationSpeed = prefabs.DefaultRotationSpeed
	}
	return &PlayerControllerSystem{rotationSpeed: rotationSpeed}
}

func (p *PlayerControllerSystem) SetRotationSpeed(speed float64) {
	if speed == 0 {
		return
	}
	p.rotationSpeed = speed
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	player, err := w.Single(component.PlayerTagComponent.Kind())
	if err != nil {
		panic("player controller: player: " + err.Error())
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		panic("player controller: player has no transform")
	}

	if input.TurnLeft {
		transform.Rotation += p.rotationSpeed
	} else if input.TurnRight {
		transform.Rotation -= p.rotationSpeed
	}
}
