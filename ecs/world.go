package ecs

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World, dt float64)
}

// Cleaner is implemented by systems holding resources released on Close.
type Cleaner interface {
	Cleanup()
}

// World owns entities, components, and system order.
type World struct {
	alloc entityAllocator

	// entity -> component ids attached to it
	tags *IntMap[*Array[component.ComponentID]]
	// component id -> storage (entity -> data, entity list)
	stores *IntMap[*componentStore]

	pending    *Array[Entity]
	pendingSet *IntMap[struct{}]

	systems []System
	events  EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		tags:       NewIntMap[*Array[component.ComponentID]](0),
		stores:     NewIntMap[*componentStore](0),
		pending:    NewArray[Entity](),
		pendingSet: NewIntMap[struct{}](0),
	}
}

// CreateEntity allocates a new entity with no components.
func (w *World) CreateEntity() Entity {
	if w == nil || w.tags == nil {
		return 0
	}
	e := w.alloc.create()
	w.tags.Put(uint64(e), NewArray[component.ComponentID]())
	return e
}

// IsAlive reports whether an entity handle refers to a live entity. Entities
// queued for destruction stay alive until the next Update.
func (w *World) IsAlive(e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	return w.tags.Contains(uint64(e))
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.tags.Len()
}

// Entities returns a snapshot of all live entities.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	keys := w.tags.Keys()
	out := make([]Entity, len(keys))
	for i, k := range keys {
		out[i] = Entity(k)
	}
	return out
}

func (w *World) storeFor(id component.ComponentID, create bool) *componentStore {
	s, ok := w.stores.Get(uint64(id))
	if ok || !create {
		return s
	}
	s = newComponentStore()
	w.stores.Put(uint64(id), s)
	return s
}

// AddComponent stores value for e under kind. value must be a *T for a
// ComponentKind[T]. Adding a kind the entity already has overwrites the
// stored value.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !kind.Accepts(value) {
		return fmt.Errorf("%w: %T for %s", component.ErrComponentType, value, kind.Name())
	}
	tags, ok := w.tags.Get(uint64(e))
	if !ok {
		return component.ErrEntityNotAlive
	}

	id := kind.ID()
	w.storeFor(id, true).set(e, value)
	if tags.IndexFunc(func(t component.ComponentID) bool { return t == id }) < 0 {
		tags.Add(id)
	}
	return nil
}

// GetComponent returns the stored value for e under kind.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || kind == nil {
		return nil, false
	}
	s := w.storeFor(kind.ID(), false)
	if s == nil {
		return nil, false
	}
	return s.get(e)
}

// HasComponent reports whether e has a component of kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil {
		return false
	}
	s := w.storeFor(kind.ID(), false)
	return s != nil && s.has(e)
}

// ComponentNames lists the kinds attached to e, in attach order.
func (w *World) ComponentNames(e Entity) []string {
	if w == nil || w.tags == nil {
		return nil
	}
	tags, ok := w.tags.Get(uint64(e))
	if !ok {
		return nil
	}
	out := make([]string, 0, tags.Len())
	for _, id := range tags.Items() {
		out = append(out, component.KindName(id))
	}
	return out
}

// RemoveComponent detaches kind from e.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil {
		return false
	}
	id := kind.ID()
	s := w.storeFor(id, false)
	if s == nil || !s.remove(e) {
		return false
	}
	if tags, ok := w.tags.Get(uint64(e)); ok {
		if i := tags.IndexFunc(func(t component.ComponentID) bool { return t == id }); i >= 0 {
			tags.Remove(i)
		}
	}
	return true
}

// Query returns the live entities that have every kind, skipping entities
// queued for destruction. The result is a snapshot owned by the caller.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*componentStore, len(kinds))
	for i, k := range kinds {
		if k == nil {
			return nil
		}
		s := w.storeFor(k.ID(), false)
		if s == nil || s.len() == 0 {
			return nil
		}
		stores[i] = s
	}

	seed := stores[0].entities()
	out := make([]Entity, 0, len(seed))
	for _, e := range seed {
		if w.pendingSet.Contains(uint64(e)) {
			continue
		}
		match := true
		for _, s := range stores[1:] {
			if !s.has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity having kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	s := w.storeFor(kind.ID(), false)
	if s == nil {
		return 0, false
	}
	for _, e := range s.entities() {
		if !w.pendingSet.Contains(uint64(e)) {
			return e, true
		}
	}
	return 0, false
}

// DestroyEntity queues e for removal at the start of the next Update. It
// returns false when e is not alive or is already queued.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.IsAlive(e) || w.pendingSet.Contains(uint64(e)) {
		return false
	}
	w.pending.Add(e)
	w.pendingSet.Put(uint64(e), struct{}{})
	return true
}

// IsPendingDestroy reports whether e is queued for destruction.
func (w *World) IsPendingDestroy(e Entity) bool {
	if w == nil || w.pendingSet == nil {
		return false
	}
	return w.pendingSet.Contains(uint64(e))
}

// DestroyEntityImmediate removes e and every component it owns right away.
// Systems should use DestroyEntity instead.
func (w *World) DestroyEntityImmediate(e Entity) bool {
	if w == nil || w.tags == nil {
		return false
	}
	tags, ok := w.tags.Get(uint64(e))
	if !ok {
		return false
	}
	for _, id := range tags.Items() {
		if s := w.storeFor(id, false); s != nil {
			s.remove(e)
		}
	}
	tags.Free()
	w.tags.Remove(uint64(e))
	w.pendingSet.Remove(uint64(e))
	w.alloc.release(e)
	return true
}

func (w *World) flushDestroyed() {
	if w.pending.Len() == 0 {
		return
	}
	for _, e := range w.pending.Items() {
		w.DestroyEntityImmediate(e)
	}
	w.pending.Clear()
	w.pendingSet.Clear()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Systems returns a copy of the system order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return append([]System(nil), w.systems...)
}

// Update flushes queued destructions, drops undrained events from the
// previous frame and then runs every system once, in registration order.
func (w *World) Update(dt float64) {
	if w == nil || w.tags == nil {
		return
	}
	w.flushDestroyed()
	w.events.flush()
	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Close releases systems and all storage. The world is empty afterwards and
// every method becomes a no-op.
func (w *World) Close() {
	if w == nil || w.tags == nil {
		return
	}
	for _, s := range w.systems {
		if c, ok := s.(Cleaner); ok {
			c.Cleanup()
		}
	}
	w.systems = nil

	w.stores.Range(func(_ uint64, s *componentStore) bool {
		s.clear()
		return true
	})
	w.tags.Range(func(_ uint64, tags *Array[component.ComponentID]) bool {
		tags.Free()
		return true
	})
	w.pending.Free()
	w.stores.Clear()
	w.tags.Clear()
	w.pendingSet.Clear()
	w.events.flush()

	w.stores = nil
	w.tags = nil
}
