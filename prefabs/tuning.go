package prefabs

const TuningFile = "tuning.yaml"

const (
	DefaultGravity       = 400.0
	DefaultTPS           = 60
	DefaultIterations    = 10
	DefaultBounceHeight  = 350.0
	DefaultTurnRatio     = 1.0
	DefaultDamping       = 1.1
	DefaultRotationSpeed = 0.09
	DefaultCameraDepth   = 999.99
	DefaultPlayerPrefab  = "player_composite.yaml"
)

type TuningSpec struct {
	Physics  PhysicsSpec  `yaml:"physics"`
	Bounce   BounceSpec   `yaml:"bounce"`
	Controls ControlsSpec `yaml:"controls"`
	Scene    SceneSpec    `yaml:"scene"`
}

type PhysicsSpec struct {
	Gravity    float64 `yaml:"gravity"`
	TPS        int     `yaml:"tps"`
	Iterations int     `yaml:"iterations"`
}

type BounceSpec struct {
	// Mode is one of steered, damped, script.
	Mode         string  `yaml:"mode"`
	BounceHeight float64 `yaml:"bounce_height"`
	TurnRatio    float64 `yaml:"turn_ratio"`
	Damping      float64 `yaml:"damping"`
	Script       string  `yaml:"script"`
}

type ControlsSpec struct {
	RotationSpeed float64  `yaml:"rotation_speed"`
	TurnLeft      []string `yaml:"turn_left"`
	TurnRight     []string `yaml:"turn_right"`
}

type SceneSpec struct {
	Camera   string `yaml:"camera"`
	Floor    string `yaml:"floor"`
	Obstacle string `yaml:"obstacle"`
	Player   string `yaml:"player"`
}

// LoadTuning reads tuning.yaml and fills unset values with defaults.
func LoadTuning() (TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return TuningSpec{}, err
	}
	return spec.WithDefaults(), nil
}

func (t TuningSpec) WithDefaults() TuningSpec {
	if t.Physics.Gravity == 0 {
		t.Physics.Gravity = DefaultGravity
	}
	if t.Physics.TPS <= 0 {
		t.Physics.TPS = DefaultTPS
	}
	if t.Physics.Iterations <= 0 {
		t.Physics.Iterations = DefaultIterations
	}
	if t.Bounce.Mode == "" {
		t.Bounce.Mode = "steered"
	}
	if t.Bounce.BounceHeight == 0 {
		t.Bounce.BounceHeight = DefaultBounceHeight
	}
	if t.Bounce.TurnRatio == 0 {
		t.Bounce.TurnRatio = DefaultTurnRatio
	}
	if t.Bounce.Damping == 0 {
		t.Bounce.Damping = DefaultDamping
	}
	if t.Controls.RotationSpeed == 0 {
		t.Controls.RotationSpeed = DefaultRotationSpeed
	}
	if len(t.Controls.TurnLeft) == 0 {
		t.Controls.TurnLeft = []string{"A", "ArrowLeft"}
	}
	if len(t.Controls.TurnRight) == 0 {
		t.Controls.TurnRight = []string{"D", "ArrowRight"}
	}
	if t.Scene.Camera == "" {
		t.Scene.Camera = "camera.yaml"
	}
	if t.Scene.Floor == "" {
		t.Scene.Floor = "floor.yaml"
	}
	if t.Scene.Obstacle == "" {
		t.Scene.Obstacle = "obstacle.yaml"
	}
	if t.Scene.Player == "" {
		t.Scene.Player = DefaultPlayerPrefab
	}
	return t
}
