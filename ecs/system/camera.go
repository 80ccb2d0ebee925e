package system

import (
	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
)

// CameraSystem locks the camera onto the player's planar position every
// tick, keeping the camera at its configured depth. There is no smoothing.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, err := w.Single(component.CameraComponent.Kind())
	if err != nil {
		panic("camera system: camera: " + err.Error())
	}
	player, err := w.Single(component.PlayerTagComponent.Kind())
	if err != nil {
		panic("camera system: player: " + err.Error())
	}

	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())

	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		camTransform = &component.Transform{}
		if err := ecs.Add(w, camEntity, component.TransformComponent.Kind(), camTransform); err != nil {
			panic("camera system: add transform: " + err.Error())
		}
	}
	camTransform.X = target.X
	camTransform.Y = target.Y
	camTransform.Z = cam.Depth
}
