package ecs

// DefaultArrayCapacity is the capacity preallocated by NewArray.
const DefaultArrayCapacity = 8

// Array is a growable sequence of values. Capacity doubles on overflow.
type Array[T any] struct {
	items []T
}

// NewArray creates an empty array with DefaultArrayCapacity slots reserved.
func NewArray[T any]() *Array[T] {
	return &Array[T]{items: make([]T, 0, DefaultArrayCapacity)}
}

// Add appends item by value.
func (a *Array[T]) Add(item T) {
	if a == nil {
		return
	}
	if len(a.items) == cap(a.items) {
		a.grow()
	}
	a.items = append(a.items, item)
}

func (a *Array[T]) grow() {
	newCap := cap(a.items) * 2
	if newCap == 0 {
		newCap = DefaultArrayCapacity
	}
	items := make([]T, len(a.items), newCap)
	copy(items, a.items)
	a.items = items
}

// Get returns a pointer to the element at index, or nil when out of range.
func (a *Array[T]) Get(index int) (*T, bool) {
	if a == nil || index < 0 || index >= len(a.items) {
		return nil, false
	}
	return &a.items[index], true
}

// Set replaces the element at index.
func (a *Array[T]) Set(index int, item T) bool {
	if a == nil || index < 0 || index >= len(a.items) {
		return false
	}
	a.items[index] = item
	return true
}

// Remove deletes the element at index, shifting the tail left.
func (a *Array[T]) Remove(index int) bool {
	if a == nil || index < 0 || index >= len(a.items) {
		return false
	}
	copy(a.items[index:], a.items[index+1:])
	var zero T
	a.items[len(a.items)-1] = zero
	a.items = a.items[:len(a.items)-1]
	return true
}

// IndexFunc returns the index of the first element matching fn, or -1.
func (a *Array[T]) IndexFunc(fn func(T) bool) int {
	if a == nil || fn == nil {
		return -1
	}
	for i, item := range a.items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Cap returns the reserved capacity.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return cap(a.items)
}

// Items returns the backing slice. Callers must not append to it.
func (a *Array[T]) Items() []T {
	if a == nil {
		return nil
	}
	return a.items
}

// Clear drops all elements but keeps the reserved capacity.
func (a *Array[T]) Clear() {
	if a == nil {
		return
	}
	clear(a.items)
	a.items = a.items[:0]
}

// Free releases the storage. The array can be reused afterwards.
func (a *Array[T]) Free() {
	if a == nil {
		return
	}
	a.items = nil
}
