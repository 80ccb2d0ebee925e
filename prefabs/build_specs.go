package prefabs

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	Rotation float64 `yaml:"rotation"`
}

type CameraComponentSpec struct {
	Depth float64 `yaml:"depth"`
	Zoom  float64 `yaml:"zoom"`
}

type RigidBodyComponentSpec struct {
	Kind         string  `yaml:"kind"`
	Mass         float64 `yaml:"mass"`
	Friction     float64 `yaml:"friction"`
	Elasticity   float64 `yaml:"elasticity"`
	LockRotation bool    `yaml:"lock_rotation"`
}

type VelocityComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CollisionLayersSpec names layers; a nil spec means "all".
type CollisionLayersSpec struct {
	Groups []string `yaml:"groups"`
	Masks  []string `yaml:"masks"`
}

type ColliderShapeSpec struct {
	Kind         string               `yaml:"kind"`
	HalfWidth    float64              `yaml:"half_width"`
	HalfHeight   float64              `yaml:"half_height"`
	BorderRadius float64              `yaml:"border_radius"`
	Radius       float64              `yaml:"radius"`
	HalfSegment  float64              `yaml:"half_segment"`
	OffsetX      float64              `yaml:"offset_x"`
	OffsetY      float64              `yaml:"offset_y"`
	Layers       *CollisionLayersSpec `yaml:"layers"`
	PogoStick    bool                 `yaml:"pogo_stick"`
}

type ColliderComponentSpec struct {
	Shapes []ColliderShapeSpec `yaml:"shapes"`
}
