package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/entity"
	"github.com/milk9111/pogo/ecs/system"
	"github.com/milk9111/pogo/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Options are the command-line overrides applied on top of tuning.yaml.
type Options struct {
	Debug        bool
	Watch        bool
	PlayerPrefab string
	BounceMode   string
}

type Game struct {
	frames int
	opts   Options

	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     entity.Scene

	physics    *system.PhysicsSystem
	bounce     *system.BounceSystem
	input      *system.InputSystem
	controller *system.PlayerControllerSystem
	camera     *system.CameraSystem
	render     *system.RenderSystem

	watcher  *prefabs.Watcher
	watching bool
}

func NewGame(opts Options) (*Game, error) {
	g, err := newGame(opts, ebiten.IsKeyPressed)
	if err != nil {
		return nil, err
	}
	ebiten.SetTPS(g.physicsTPS())

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
			g.watching = true
		}
	}
	return g, nil
}

// newGame wires the world and systems without touching the window, so the
// tick loop can run headless.
func newGame(opts Options, pressed system.KeyPressedFunc) (*Game, error) {
	tuning, err := loadTuning(opts)
	if err != nil {
		return nil, err
	}

	bindings, err := system.KeyBindingsFromSpec(tuning.Controls)
	if err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}
	strategy, err := system.NewBounceStrategy(tuning.Bounce)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:       opts,
		world:      ecs.NewWorld(),
		physics:    system.NewPhysicsSystem(system.PhysicsConfigFromSpec(tuning.Physics)),
		bounce:     system.NewBounceSystem(strategy),
		input:      system.NewInputSystemWithKeys(bindings, pressed),
		controller: system.NewPlayerControllerSystem(tuning.Controls.RotationSpeed),
		camera:     system.NewCameraSystem(),
	}
	g.render = system.NewRenderSystem(g.physics)
	g.render.Debug = opts.Debug
	g.render.Mode = strategy.Name()

	g.scheduler = ecs.NewScheduler(
		g.physics,
		g.bounce,
		g.input,
		g.controller,
		g.camera,
	)

	g.scene, err = entity.BuildScene(g.world, tuning.Scene)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func loadTuning(opts Options) (prefabs.TuningSpec, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return prefabs.TuningSpec{}, err
	}
	if opts.PlayerPrefab != "" {
		tuning.Scene.Player = opts.PlayerPrefab
	}
	if opts.BounceMode != "" {
		tuning.Bounce.Mode = opts.BounceMode
	}
	return tuning, nil
}

func (g *Game) physicsTPS() int {
	return int(1/g.physics.Dt() + 0.5)
}

// reloadTuning re-reads tuning.yaml and swaps the live settings. Scene
// prefabs are not rebuilt; the entity set is fixed after startup.
func (g *Game) reloadTuning() error {
	tuning, err := loadTuning(g.opts)
	if err != nil {
		return err
	}
	bindings, err := system.KeyBindingsFromSpec(tuning.Controls)
	if err != nil {
		return fmt.Errorf("controls: %w", err)
	}
	strategy, err := system.NewBounceStrategy(tuning.Bounce)
	if err != nil {
		return err
	}

	g.physics.SetConfig(system.PhysicsConfigFromSpec(tuning.Physics))
	g.bounce.SetStrategy(strategy)
	g.input.SetBindings(bindings)
	g.controller.SetRotationSpeed(tuning.Controls.RotationSpeed)
	g.render.Mode = strategy.Name()
	ebiten.SetTPS(g.physicsTPS())
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil || !g.watching {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watching = false
				return
			}
			if !prefabs.IsTuningFile(path) && !prefabs.IsScriptFile(path) {
				continue
			}
			if err := g.reloadTuning(); err != nil {
				log.Printf("reload %s: %v", path, err)
				continue
			}
			log.Printf("reloaded tuning after change to %s", path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watching = false
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	g.world.Update(g.scheduler)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
