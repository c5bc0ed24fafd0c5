package ecs

import "github.com/milk9111/platformer/ecs/component"

// Add copies value into storage owned by the world. Adding a kind the entity
// already has overwrites the stored value in place, so pointers returned by
// Get stay valid.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value T) error {
	if existing, ok := Get(w, e, kind); ok {
		*existing = value
		return nil
	}
	owned := new(T)
	*owned = value
	return w.AddComponent(e, kind, owned)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.RemoveComponent(e, kind)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.HasComponent(e, kind)
}

// Get returns a pointer to the stored component, or nil and false.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.GetComponent(e, kind)
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// ForEach calls fn for every queried entity with its component.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	for _, e := range w.Query(ka) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}
