package entity

import (
	"fmt"

	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/milk9111/pogo/prefabs"
)

// Scene holds the handles of everything spawned at startup. The scene's
// cardinality never changes afterwards.
type Scene struct {
	Camera   ecs.Entity
	Floor    ecs.Entity
	Obstacle ecs.Entity
	Player   ecs.Entity
}

// BuildScene spawns camera, floor, obstacle and player from their prefabs
// and checks that exactly one player exists.
func BuildScene(w *ecs.World, spec prefabs.SceneSpec) (Scene, error) {
	var scene Scene
	var err error

	if scene.Camera, err = NewCamera(w, spec.Camera); err != nil {
		return Scene{}, err
	}
	if scene.Floor, err = NewFloor(w, spec.Floor); err != nil {
		return Scene{}, err
	}
	if scene.Obstacle, err = NewObstacle(w, spec.Obstacle); err != nil {
		return Scene{}, err
	}
	if scene.Player, err = NewPlayer(w, spec.Player); err != nil {
		return Scene{}, err
	}

	if _, err := w.Single(component.PlayerTagComponent.Kind()); err != nil {
		return Scene{}, fmt.Errorf("scene: player: %w", err)
	}
	if _, err := w.Single(component.CameraTagComponent.Kind()); err != nil {
		return Scene{}, fmt.Errorf("scene: camera: %w", err)
	}
	return scene, nil
}

func NewCamera(w *ecs.World, prefab string) (ecs.Entity, error) {
	camera, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	if !ecs.Has(w, camera, component.CameraComponent.Kind()) || !ecs.Has(w, camera, component.TransformComponent.Kind()) {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: prefab %q needs camera and transform", prefab)
	}
	return camera, nil
}

func NewFloor(w *ecs.World, prefab string) (ecs.Entity, error) {
	floor, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("floor: %w", err)
	}
	if rb, ok := ecs.Get(w, floor, component.RigidBodyComponent.Kind()); !ok || rb.Kind != component.BodyStatic {
		ecs.DestroyEntity(w, floor)
		return 0, fmt.Errorf("floor: prefab %q must be a static rigid body", prefab)
	}
	return floor, nil
}

func NewObstacle(w *ecs.World, prefab string) (ecs.Entity, error) {
	obstacle, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("obstacle: %w", err)
	}
	if ecs.Has(w, obstacle, component.PlayerTagComponent.Kind()) {
		ecs.DestroyEntity(w, obstacle)
		return 0, fmt.Errorf("obstacle: prefab %q must not carry player_tag", prefab)
	}
	return obstacle, nil
}

// NewPlayer builds either the single-cuboid or the composite player. Both
// need a dynamic, rotation-locked body and a pogo stick shape.
func NewPlayer(w *ecs.World, prefab string) (ecs.Entity, error) {
	player, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := validatePlayer(w, player); err != nil {
		ecs.DestroyEntity(w, player)
		return 0, fmt.Errorf("player: prefab %q: %w", prefab, err)
	}
	return player, nil
}

func NewPlayerAt(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	player, err := NewPlayer(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, player, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return player, nil
}

func validatePlayer(w *ecs.World, player ecs.Entity) error {
	if !ecs.Has(w, player, component.PlayerTagComponent.Kind()) {
		return fmt.Errorf("missing player_tag")
	}
	rb, ok := ecs.Get(w, player, component.RigidBodyComponent.Kind())
	if !ok || rb.Kind != component.BodyDynamic {
		return fmt.Errorf("needs a dynamic rigid body")
	}
	if !rb.LockRotation {
		return fmt.Errorf("rigid body must lock rotation")
	}
	if !ecs.Has(w, player, component.VelocityComponent.Kind()) {
		return fmt.Errorf("missing velocity")
	}
	collider, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return fmt.Errorf("missing collider")
	}
	idx, ok := collider.PogoStick()
	if !ok {
		return fmt.Errorf("collider has no pogo_stick shape")
	}
	if !collider.Shapes[idx].Layers.IsPlayer() {
		return fmt.Errorf("pogo_stick shape must be in the player layer only")
	}
	for i, s := range collider.Shapes {
		if i != idx && s.Layers.ContainsGroup(component.LayerPlayer) {
			return fmt.Errorf("shape %d: only the pogo_stick shape may join the player layer", i)
		}
	}
	return nil
}
