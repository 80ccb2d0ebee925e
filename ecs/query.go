package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/pogo/ecs/component"
)

var (
	ErrNoEntity         = errors.New("ecs: no entity matches query")
	ErrMultipleEntities = errors.New("ecs: more than one entity matches query")
)

// Query returns live entities present in every listed store, in the dense
// order of the smallest store.
func (w *World) Query(kinds ...component.KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.store(k.ID())
		if set == nil || set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	// iterate smallest set
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		all := true
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity holding kind.
func (w *World) First(kind component.KindID) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Single returns the unique live entity holding kind. Zero or several
// matches is an error: callers rely on exactly one.
func (w *World) Single(kind component.KindID) (Entity, error) {
	ents := w.Query(kind)
	switch len(ents) {
	case 0:
		return 0, fmt.Errorf("single component %d: %w", kind.ID(), ErrNoEntity)
	case 1:
		return ents[0], nil
	default:
		return 0, fmt.Errorf("single component %d: %d matches: %w", kind.ID(), len(ents), ErrMultipleEntities)
	}
}
