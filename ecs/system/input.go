package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/milk9111/pogo/prefabs"
)

// KeyPressedFunc reports whether a key is held this tick.
type KeyPressedFunc func(key ebiten.Key) bool

// KeyBindings maps the turn actions to any of several keys.
type KeyBindings struct {
	TurnLeft  []ebiten.Key
	TurnRight []ebiten.Key
}

// KeyBindingsFromSpec parses ebiten key names such as "A" or "ArrowLeft".
func KeyBindingsFromSpec(spec prefabs.ControlsSpec) (KeyBindings, error) {
	left, err := parseKeys(spec.TurnLeft)
	if err != nil {
		return KeyBindings{}, fmt.Errorf("turn_left: %w", err)
	}
	right, err := parseKeys(spec.TurnRight)
	if err != nil {
		return KeyBindings{}, fmt.Errorf("turn_right: %w", err)
	}
	return KeyBindings{TurnLeft: left, TurnRight: right}, nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

type InputSystem struct {
	pressed  KeyPressedFunc
	bindings KeyBindings
}

func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{pressed: ebiten.IsKeyPressed, bindings: bindings}
}

// NewInputSystemWithKeys samples keys from pressed instead of ebiten.
func NewInputSystemWithKeys(bindings KeyBindings, pressed KeyPressedFunc) *InputSystem {
	return &InputSystem{pressed: pressed, bindings: bindings}
}

func (i *InputSystem) SetBindings(bindings KeyBindings) {
	i.bindings = bindings
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.pressed == nil {
		return
	}

	left := i.anyPressed(i.bindings.TurnLeft)
	right := i.anyPressed(i.bindings.TurnRight)

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.TurnLeft = left
		input.TurnRight = right
	})
}

func (i *InputSystem) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if i.pressed(k) {
			return true
		}
	}
	return false
}
