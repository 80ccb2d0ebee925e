package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuning(t *testing.T) {
	tuning, err := LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 400.0, tuning.Physics.Gravity)
	assert.Equal(t, 60, tuning.Physics.TPS)
	assert.Equal(t, "steered", tuning.Bounce.Mode)
	assert.Equal(t, 350.0, tuning.Bounce.BounceHeight)
	assert.Equal(t, 1.0, tuning.Bounce.TurnRatio)
	assert.Equal(t, 0.09, tuning.Controls.RotationSpeed)
	assert.Equal(t, []string{"A", "ArrowLeft"}, tuning.Controls.TurnLeft)
	assert.Equal(t, "player_composite.yaml", tuning.Scene.Player)
}

func TestTuningDefaults(t *testing.T) {
	got := TuningSpec{Bounce: BounceSpec{Mode: "damped", BounceHeight: 500}}.WithDefaults()

	assert.Equal(t, DefaultGravity, got.Physics.Gravity)
	assert.Equal(t, DefaultTPS, got.Physics.TPS)
	assert.Equal(t, DefaultIterations, got.Physics.Iterations)
	assert.Equal(t, "damped", got.Bounce.Mode)
	assert.Equal(t, 500.0, got.Bounce.BounceHeight)
	assert.Equal(t, DefaultDamping, got.Bounce.Damping)
	assert.Equal(t, []string{"D", "ArrowRight"}, got.Controls.TurnRight)
	assert.Equal(t, "camera.yaml", got.Scene.Camera)
	assert.Equal(t, DefaultPlayerPrefab, got.Scene.Player)
}

func TestDecodeComponentSpec(t *testing.T) {
	raw := map[string]any{"kind": "dynamic", "mass": 2, "lock_rotation": true}
	spec, err := DecodeComponentSpec[RigidBodyComponentSpec](raw)
	require.NoError(t, err)
	assert.Equal(t, RigidBodyComponentSpec{Kind: "dynamic", Mass: 2, LockRotation: true}, spec)

	empty, err := DecodeComponentSpec[VelocityComponentSpec](nil)
	require.NoError(t, err)
	assert.Equal(t, VelocityComponentSpec{}, empty)
}

func TestScriptPaths(t *testing.T) {
	cases := map[string]string{
		"bounce.tengo":                 "scripts/bounce.tengo",
		"scripts/bounce.tengo":         "scripts/bounce.tengo",
		"prefabs/scripts/bounce.tengo": "scripts/bounce.tengo",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanScriptPath(in), in)
	}

	src, err := LoadScript("bounce.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(src), "bounce_height")
}

func TestWatchedFileKinds(t *testing.T) {
	assert.True(t, IsTuningFile("prefabs/tuning.yaml"))
	assert.False(t, IsTuningFile("prefabs/player.yaml"))
	assert.True(t, IsScriptFile("prefabs/scripts/bounce.tengo"))
	assert.False(t, IsScriptFile("prefabs/tuning.yaml"))
}
