package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/milk9111/pogo/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingsFromSpec(t *testing.T) {
	bindings, err := KeyBindingsFromSpec(prefabs.ControlsSpec{
		TurnLeft:  []string{"A", "ArrowLeft"},
		TurnRight: []string{"D"},
	})
	require.NoError(t, err)
	assert.Equal(t, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, bindings.TurnLeft)
	assert.Equal(t, []ebiten.Key{ebiten.KeyD}, bindings.TurnRight)

	_, err = KeyBindingsFromSpec(prefabs.ControlsSpec{TurnLeft: []string{"NotAKey"}})
	assert.Error(t, err)
}

func TestInputSystemSamplesKeys(t *testing.T) {
	held := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool { return held[k] }
	bindings := KeyBindings{
		TurnLeft:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		TurnRight: []ebiten.Key{ebiten.KeyD},
	}

	w := ecs.NewWorld()
	player := spawnPlayer(t, w, 0, component.Velocity{})
	sys := NewInputSystemWithKeys(bindings, pressed)

	held[ebiten.KeyArrowLeft] = true
	sys.Update(w)
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	assert.Equal(t, component.Input{TurnLeft: true}, *input)

	held[ebiten.KeyD] = true
	sys.Update(w)
	assert.Equal(t, component.Input{TurnLeft: true, TurnRight: true}, *input)

	clear(held)
	sys.Update(w)
	assert.Equal(t, component.Input{}, *input)

	sys.SetBindings(KeyBindings{TurnRight: []ebiten.Key{ebiten.KeyL}})
	held[ebiten.KeyL] = true
	sys.Update(w)
	assert.Equal(t, component.Input{TurnRight: true}, *input)
}
