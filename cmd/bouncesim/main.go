package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/milk9111/pogo/ecs/entity"
	"github.com/milk9111/pogo/ecs/system"
	"github.com/milk9111/pogo/prefabs"
)

// bouncesim runs the playground without a window and prints every bounce.
func main() {
	ticks := flag.Int("ticks", 600, "number of fixed ticks to simulate")
	player := flag.String("player", "", "player prefab override")
	bounce := flag.String("bounce", "", "bounce mode override: steered, damped or script")
	turn := flag.String("turn", "none", "held turn key for the whole run: left, right or none")
	dir := flag.String("prefabs", prefabs.Dir, "prefab directory checked before the embedded copy")
	flag.Parse()

	prefabs.Dir = *dir

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}
	if *player != "" {
		tuning.Scene.Player = *player
	}
	if *bounce != "" {
		tuning.Bounce.Mode = *bounce
	}

	bindings, err := system.KeyBindingsFromSpec(tuning.Controls)
	if err != nil {
		log.Fatal(err)
	}
	pressed, err := heldKey(*turn, bindings)
	if err != nil {
		log.Fatal(err)
	}
	strategy, err := system.NewBounceStrategy(tuning.Bounce)
	if err != nil {
		log.Fatal(err)
	}

	w := ecs.NewWorld()
	scheduler := ecs.NewScheduler(
		system.NewPhysicsSystem(system.PhysicsConfigFromSpec(tuning.Physics)),
		system.NewBounceSystem(strategy),
		system.NewInputSystemWithKeys(bindings, pressed),
		system.NewPlayerControllerSystem(tuning.Controls.RotationSpeed),
		system.NewCameraSystem(),
	)
	scene, err := entity.BuildScene(w, tuning.Scene)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("mode=%s player=%s ticks=%d\n", strategy.Name(), tuning.Scene.Player, *ticks)

	seen := 0
	for tick := 1; tick <= *ticks; tick++ {
		w.Update(scheduler)

		stats, ok := ecs.Get(w, scene.Player, component.BounceStatsComponent.Kind())
		if !ok || stats.Count == seen {
			continue
		}
		seen = stats.Count

		t, _ := ecs.Get(w, scene.Player, component.TransformComponent.Kind())
		v, _ := ecs.Get(w, scene.Player, component.VelocityComponent.Kind())
		fmt.Printf("tick %4d bounce %3d pos (%8.2f, %8.2f) rot %6.2f vel (%8.2f, %8.2f) |v| %.2f\n",
			tick, stats.Count, t.X, t.Y, t.Rotation, v.X, v.Y, math.Hypot(v.X, v.Y))
	}
	fmt.Printf("bounces=%d\n", seen)
}

// heldKey reports the first key bound to the requested turn as held.
func heldKey(turn string, bindings system.KeyBindings) (system.KeyPressedFunc, error) {
	var keys []ebiten.Key
	switch turn {
	case "none", "":
		return func(ebiten.Key) bool { return false }, nil
	case "left":
		keys = bindings.TurnLeft
	case "right":
		keys = bindings.TurnRight
	default:
		return nil, fmt.Errorf("turn: unknown direction %q", turn)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("turn: no key bound to %s", turn)
	}
	held := keys[0]
	return func(k ebiten.Key) bool { return k == held }, nil
}
