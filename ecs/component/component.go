// Package component defines the component kinds and data stored by the ECS
// world. Every kind is declared once as a package variable:
//
//	var PositionComponent = NewComponent[Position]()
package component

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
	ErrComponentType        = errors.New("ecs: component value does not match kind")
)

// ComponentID is the runtime id of a component kind. Zero is never issued.
type ComponentID uint32

var (
	nextComponentID atomic.Uint32

	namesMu sync.RWMutex
	names   = map[ComponentID]string{}
)

// Kind identifies a component type without its Go type parameter so the
// world can index heterogeneous storage.
type Kind interface {
	ID() ComponentID
	Name() string
	// Accepts reports whether value can be stored under the kind.
	Accepts(value any) bool
}

// ComponentKind is the typed key for component T. Values are stored as *T.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind registers T under a fresh id. Declare kinds once at
// package level; each call issues a new id.
func NewComponentKind[T any]() ComponentKind[T] {
	id := ComponentID(nextComponentID.Add(1))
	namesMu.Lock()
	names[id] = reflect.TypeOf((*T)(nil)).Elem().String()
	namesMu.Unlock()
	return ComponentKind[T]{id: id}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

// Valid reports whether k was created by NewComponentKind.
func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

func (k ComponentKind[T]) Name() string {
	return KindName(k.id)
}

// Accepts reports whether value is a *T.
func (k ComponentKind[T]) Accepts(value any) bool {
	_, ok := value.(*T)
	return ok
}

// KindName returns the Go type name registered for id, or "" when unknown.
func KindName(id ComponentID) string {
	namesMu.RLock()
	defer namesMu.RUnlock()
	return names[id]
}

// ComponentHandle is the exported declaration form of a kind.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent declares a component kind for T.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

// Kind returns the typed key used with ecs.Add, ecs.Get and queries.
func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
