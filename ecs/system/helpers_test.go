package system

import (
	"testing"

	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/stretchr/testify/require"
)

func spawnPlayer(t *testing.T, w *ecs.World, rotation float64, vel component.Velocity) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Rotation: rotation}))
	require.NoError(t, ecs.Add(w, e, component.VelocityComponent.Kind(), &vel))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, e, component.BounceStatsComponent.Kind(), &component.BounceStats{}))
	return e
}

func spawnCamera(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Depth: 999.99, Zoom: 1}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	return e
}

func velocityOf(t *testing.T, w *ecs.World, e ecs.Entity) component.Velocity {
	t.Helper()
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	require.True(t, ok)
	return *v
}

var (
	pogoLayers  = component.NewCollisionLayers(component.LayerPlayer, component.LayerWorld)
	worldLayers = component.AllCollisionLayers()
)

func playerHitsWorld(player ecs.Entity, started bool) ecs.CollisionEvent {
	return ecs.CollisionEvent{
		A:       ecs.Participant{Entity: 100, Layers: worldLayers},
		B:       ecs.Participant{Entity: player, Layers: pogoLayers},
		Started: started,
	}
}
