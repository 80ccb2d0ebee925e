package system

import (
	"testing"

	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerControllerTurns(t *testing.T) {
	cases := []struct {
		name  string
		input component.Input
		want  float64
	}{
		{name: "idle", input: component.Input{}, want: 0},
		{name: "left", input: component.Input{TurnLeft: true}, want: 0.09},
		{name: "right", input: component.Input{TurnRight: true}, want: -0.09},
		{name: "both turns left", input: component.Input{TurnLeft: true, TurnRight: true}, want: 0.09},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := spawnPlayer(t, w, 0, component.Velocity{})
			input, ok := ecs.Get(w, player, component.InputComponent.Kind())
			require.True(t, ok)
			*input = c.input

			NewPlayerControllerSystem(0.09).Update(w)

			transform, _ := ecs.Get(w, player, component.TransformComponent.Kind())
			assert.InDelta(t, c.want, transform.Rotation, tolerance)
		})
	}
}

func TestPlayerControllerAccumulates(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnPlayer(t, w, 0, component.Velocity{})
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	input.TurnRight = true

	ctrl := NewPlayerControllerSystem(0)
	for i := 0; i < 10; i++ {
		ctrl.Update(w)
	}

	transform, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	assert.InDelta(t, -0.9, transform.Rotation, 1e-9)
}

func TestPlayerControllerPanicsWithoutPlayer(t *testing.T) {
	assert.Panics(t, func() { NewPlayerControllerSystem(0.09).Update(ecs.NewWorld()) })
}
