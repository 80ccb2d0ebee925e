package ecs

import "github.com/milk9111/pogo/ecs/component"

// Participant is one side of a collision: the owning entity and the
// collision layers of the specific shape that touched.
type Participant struct {
	Entity Entity
	Layers component.CollisionLayers
}

// CollisionEvent is emitted when two shapes begin (Started) or stop
// overlapping. It lives for one tick.
type CollisionEvent struct {
	A       Participant
	B       Participant
	Started bool
}

// PlayerSide returns the participant whose shape belongs to the player
// layer, if either does.
func (e CollisionEvent) PlayerSide() (Participant, bool) {
	if e.B.Layers.IsPlayer() {
		return e.B, true
	}
	if e.A.Layers.IsPlayer() {
		return e.A, true
	}
	return Participant{}, false
}

// HasPlayer reports whether either side passes the player filter.
func (e CollisionEvent) HasPlayer() bool {
	_, ok := e.PlayerSide()
	return ok
}

// CollisionQueue is a single-producer, single-consumer FIFO drained once
// per tick.
type CollisionQueue struct {
	items []CollisionEvent
}

// Push adds an event.
func (q *CollisionQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of pending events.
func (q *CollisionQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events in push order and clears the queue.
func (q *CollisionQueue) Drain() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *CollisionQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
