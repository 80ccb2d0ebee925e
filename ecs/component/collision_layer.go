package component

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Layer is a bit in a collision group mask.
type Layer uint32

const (
	LayerWorld Layer = 1 << iota
	LayerPlayer

	LayerNone Layer = 0
	LayerAll  Layer = ^Layer(0)
)

var layerNames = map[string]Layer{
	"world":  LayerWorld,
	"player": LayerPlayer,
	"all":    LayerAll,
	"none":   LayerNone,
}

// ParseLayers ORs together named layers.
func ParseLayers(names []string) (Layer, error) {
	var out Layer
	for _, name := range names {
		l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("collision layer: unknown layer %q", name)
		}
		out |= l
	}
	return out, nil
}

// CollisionLayers pairs the groups a shape belongs to with the groups it
// interacts with. Two shapes only generate contacts and events when each
// one's groups intersect the other's masks.
type CollisionLayers struct {
	Groups Layer
	Masks  Layer
}

func NewCollisionLayers(groups, masks Layer) CollisionLayers {
	return CollisionLayers{Groups: groups, Masks: masks}
}

// AllCollisionLayers is the default for shapes that declare no layers.
func AllCollisionLayers() CollisionLayers {
	return CollisionLayers{Groups: LayerAll, Masks: LayerAll}
}

// NoCollisionLayers belongs to nothing and interacts with nothing.
func NoCollisionLayers() CollisionLayers {
	return CollisionLayers{}
}

func (l CollisionLayers) ContainsGroup(layer Layer) bool {
	return l.Groups&layer == layer
}

func (l CollisionLayers) Interacts(other CollisionLayers) bool {
	return l.Groups&other.Masks != 0 && other.Groups&l.Masks != 0
}

// IsPlayer reports whether these layers mark the player's side of a
// collision: member of Player and not of World.
func (l CollisionLayers) IsPlayer() bool {
	return l.ContainsGroup(LayerPlayer) && !l.ContainsGroup(LayerWorld)
}

// Filter converts the layers to a Chipmunk shape filter.
func (l CollisionLayers) Filter() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(l.Groups), uint(l.Masks))
}
