package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/milk9111/pogo/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"floor_tag":    addFloorTag,
	"obstacle_tag": addObstacleTag,
	"input":        addInput,
	"bounce_stats": addBounceStats,
	"transform":    addTransform,
	"camera":       addCamera,
	"rigid_body":   addRigidBody,
	"velocity":     addVelocity,
	"collider":     addCollider,
}

// componentBuildOrder fixes the order so later builders can read earlier
// components.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"floor_tag",
	"obstacle_tag",
	"input",
	"bounce_stats",
	"transform",
	"camera",
	"rigid_body",
	"velocity",
	"collider",
}

// BuildEntity creates an entity from a YAML prefab. On any failure the
// partially built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec)
}

func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addFloorTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.FloorTagComponent.Kind(), &component.FloorTag{})
}

func addObstacleTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addBounceStats(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BounceStatsComponent.Kind(), &component.BounceStats{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Z:        spec.Z,
		Rotation: spec.Rotation,
	})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Depth == 0 {
		spec.Depth = prefabs.DefaultCameraDepth
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Depth: spec.Depth,
		Zoom:  spec.Zoom,
	})
}

type rigidBodySpec = prefabs.RigidBodyComponentSpec

func addRigidBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[rigidBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode rigid body spec: %w", err)
	}

	var kind component.BodyKind
	switch strings.ToLower(strings.TrimSpace(spec.Kind)) {
	case "", "static":
		kind = component.BodyStatic
	case "dynamic":
		kind = component.BodyDynamic
	default:
		return fmt.Errorf("rigid body: unknown kind %q", spec.Kind)
	}
	if kind == component.BodyDynamic && spec.Mass <= 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{
		Kind:         kind,
		Mass:         spec.Mass,
		Friction:     spec.Friction,
		Elasticity:   spec.Elasticity,
		LockRotation: spec.LockRotation,
	})
}

type velocitySpec = prefabs.VelocityComponentSpec

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[velocitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	if rb, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind()); ok && rb.Kind == component.BodyStatic {
		return fmt.Errorf("velocity: static bodies cannot carry velocity")
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: spec.X, Y: spec.Y})
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	if len(spec.Shapes) == 0 {
		return fmt.Errorf("collider: no shapes")
	}

	collider := &component.Collider{Shapes: make([]component.ColliderShape, 0, len(spec.Shapes))}
	pogo := false
	for i, s := range spec.Shapes {
		shape, err := decodeColliderShape(s)
		if err != nil {
			return fmt.Errorf("collider: shape %d: %w", i, err)
		}
		if shape.PogoStick {
			if pogo {
				return fmt.Errorf("collider: shape %d: more than one pogo_stick shape", i)
			}
			pogo = true
		}
		collider.Shapes = append(collider.Shapes, shape)
	}

	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), collider); err != nil {
		return err
	}
	if pogo {
		return ecs.Add(w, e, component.PogoStickTagComponent.Kind(), &component.PogoStickTag{})
	}
	return nil
}

func decodeColliderShape(s prefabs.ColliderShapeSpec) (component.ColliderShape, error) {
	shape := component.ColliderShape{
		HalfWidth:    s.HalfWidth,
		HalfHeight:   s.HalfHeight,
		BorderRadius: s.BorderRadius,
		Radius:       s.Radius,
		HalfSegment:  s.HalfSegment,
		OffsetX:      s.OffsetX,
		OffsetY:      s.OffsetY,
		PogoStick:    s.PogoStick,
		Layers:       component.AllCollisionLayers(),
	}

	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case "cuboid", "box":
		if s.HalfWidth <= 0 || s.HalfHeight <= 0 {
			return shape, fmt.Errorf("cuboid needs positive half extents")
		}
		shape.Kind = component.ShapeCuboid
	case "sphere", "circle":
		if s.Radius <= 0 {
			return shape, fmt.Errorf("sphere needs a positive radius")
		}
		shape.Kind = component.ShapeSphere
	case "capsule":
		if s.Radius <= 0 || s.HalfSegment < 0 {
			return shape, fmt.Errorf("capsule needs a positive radius")
		}
		shape.Kind = component.ShapeCapsule
	default:
		return shape, fmt.Errorf("unknown shape kind %q", s.Kind)
	}

	if s.Layers != nil {
		groups, err := component.ParseLayers(s.Layers.Groups)
		if err != nil {
			return shape, err
		}
		masks, err := component.ParseLayers(s.Layers.Masks)
		if err != nil {
			return shape, err
		}
		shape.Layers = component.NewCollisionLayers(groups, masks)
	}
	return shape, nil
}
