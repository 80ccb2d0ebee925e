package ecs

import "github.com/milk9111/pogo/ecs/component"

// World owns entities, their components, and the per-tick collision queue.
type World struct {
	entities   entityStore
	stores     map[component.ComponentID]*SparseSet
	collisions CollisionQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Collisions returns the collision event queue filled by the physics step.
func (w *World) Collisions() *CollisionQueue {
	if w == nil {
		return nil
	}
	return &w.collisions
}

// Update runs the scheduler once and discards any collision events no
// system drained, so nothing carries into the next tick.
func (w *World) Update(s *Scheduler) {
	if w == nil {
		return
	}
	if s != nil {
		s.Update(w)
	}
	w.collisions.flush()
}

func (w *World) store(id component.ComponentID) *SparseSet {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}

func (w *World) addComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	set := w.stores[id]
	if set == nil {
		set = newSparseSet()
		w.stores[id] = set
	}
	set.Set(e, value)
	return nil
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	set := w.store(id)
	if set == nil {
		return false
	}
	return set.Remove(e)
}

func (w *World) hasComponent(e Entity, id component.ComponentID) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(id).Has(e)
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v := w.store(id).Get(e)
	return v, v != nil
}
