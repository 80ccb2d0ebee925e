package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pogo/common"
	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/milk9111/pogo/prefabs"
)

const (
	BounceModeSteered = "steered"
	BounceModeDamped  = "damped"
	BounceModeScript  = "script"
)

// BounceStrategy turns the player's incoming velocity and bounce angle
// into the outgoing velocity.
type BounceStrategy interface {
	Name() string
	Resolve(v cp.Vector, angle float64) (cp.Vector, error)
}

// SteeredBounce reflects the vertical component, bends the result toward
// the facing direction and rescales it to a fixed bounce speed.
type SteeredBounce struct {
	BounceHeight float64
	TurnRatio    float64
}

func (SteeredBounce) Name() string { return BounceModeSteered }

func (b SteeredBounce) Resolve(v cp.Vector, angle float64) (cp.Vector, error) {
	dir := common.DirectionFromAngle(angle, v.Length())
	v.Y = -v.Y
	v = v.Add(dir.Mult(b.TurnRatio))
	return common.NormalizeOrZero(v).Mult(b.BounceHeight), nil
}

// DampedBounce inverts and damps the vertical component only; facing has
// no effect.
type DampedBounce struct {
	Damping float64
}

func (DampedBounce) Name() string { return BounceModeDamped }

func (b DampedBounce) Resolve(v cp.Vector, _ float64) (cp.Vector, error) {
	damping := b.Damping
	if damping == 0 {
		damping = prefabs.DefaultDamping
	}
	v.Y = -v.Y / damping
	return v, nil
}

// ScriptedBounce runs a tengo script with vx, vy, angle, bounce_height and
// turn_ratio defined; the script assigns the new vx and vy.
type ScriptedBounce struct {
	path         string
	compiled     *tengo.Compiled
	bounceHeight float64
	turnRatio    float64
}

func NewScriptedBounce(path string, src []byte, bounceHeight, turnRatio float64) (*ScriptedBounce, error) {
	script := tengo.NewScript(src)
	for _, name := range []string{"vx", "vy", "angle", "bounce_height", "turn_ratio"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("bounce script %s: %w", path, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("bounce script %s: compile: %w", path, err)
	}
	return &ScriptedBounce{
		path:         path,
		compiled:     compiled,
		bounceHeight: bounceHeight,
		turnRatio:    turnRatio,
	}, nil
}

func (*ScriptedBounce) Name() string { return BounceModeScript }

func (b *ScriptedBounce) Resolve(v cp.Vector, angle float64) (cp.Vector, error) {
	inputs := map[string]float64{
		"vx":            v.X,
		"vy":            v.Y,
		"angle":         angle,
		"bounce_height": b.bounceHeight,
		"turn_ratio":    b.turnRatio,
	}
	for name, value := range inputs {
		if err := b.compiled.Set(name, value); err != nil {
			return v, fmt.Errorf("bounce script %s: set %s: %w", b.path, name, err)
		}
	}
	if err := b.compiled.Run(); err != nil {
		return v, fmt.Errorf("bounce script %s: run: %w", b.path, err)
	}
	return cp.Vector{X: b.compiled.Get("vx").Float(), Y: b.compiled.Get("vy").Float()}, nil
}

// NewBounceStrategy builds the strategy named by spec.Mode.
func NewBounceStrategy(spec prefabs.BounceSpec) (BounceStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(spec.Mode)) {
	case "", BounceModeSteered:
		return SteeredBounce{BounceHeight: spec.BounceHeight, TurnRatio: spec.TurnRatio}, nil
	case BounceModeDamped:
		return DampedBounce{Damping: spec.Damping}, nil
	case BounceModeScript:
		if spec.Script == "" {
			return nil, fmt.Errorf("bounce: script mode needs a script")
		}
		src, err := prefabs.LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("bounce: load script %s: %w", spec.Script, err)
		}
		return NewScriptedBounce(spec.Script, src, spec.BounceHeight, spec.TurnRatio)
	default:
		return nil, fmt.Errorf("bounce: unknown mode %q", spec.Mode)
	}
}

// BounceSystem consumes the tick's collision events and, for every contact
// start between the player's pogo stick and the world, rewrites the
// player's velocity with the active strategy. Events apply one after
// another; contact ends and non-player contacts are ignored.
type BounceSystem struct {
	strategy BounceStrategy
}

func NewBounceSystem(strategy BounceStrategy) *BounceSystem {
	if strategy == nil {
		strategy = SteeredBounce{BounceHeight: prefabs.DefaultBounceHeight, TurnRatio: prefabs.DefaultTurnRatio}
	}
	return &BounceSystem{strategy: strategy}
}

func (bs *BounceSystem) Strategy() BounceStrategy {
	return bs.strategy
}

func (bs *BounceSystem) SetStrategy(strategy BounceStrategy) {
	if strategy == nil {
		return
	}
	bs.strategy = strategy
}

func (bs *BounceSystem) Update(w *ecs.World) {
	events := w.Collisions().Drain()
	if len(events) == 0 {
		return
	}

	for _, evt := range events {
		if !evt.Started || !evt.HasPlayer() {
			continue
		}

		player, err := w.Single(component.PlayerTagComponent.Kind())
		if err != nil {
			panic("bounce system: player: " + err.Error())
		}
		transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
		if !ok {
			panic("bounce system: player has no transform")
		}
		vel, ok := ecs.Get(w, player, component.VelocityComponent.Kind())
		if !ok {
			panic("bounce system: player has no velocity")
		}

		angle := common.AngleFromOrientation(common.OrientationFromAngle(transform.Rotation))
		next, err := bs.strategy.Resolve(vel.Vector(), angle)
		if err != nil {
			log.Printf("bounce system: %s: %v", bs.strategy.Name(), err)
			continue
		}
		vel.Set(next)

		if stats, ok := ecs.Get(w, player, component.BounceStatsComponent.Kind()); ok {
			stats.Count++
			stats.LastSpeed = next.Length()
		}
	}
}
