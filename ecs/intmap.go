package ecs

// DefaultMapCapacity is the bucket count used when NewIntMap gets no capacity.
const DefaultMapCapacity = 64

// maxLoad is the average chain length that triggers a resize.
const maxLoad = 2

type mapNode[V any] struct {
	key   uint64
	value V
	next  *mapNode[V]
}

// IntMap is an integer keyed hash map with separately chained buckets.
type IntMap[V any] struct {
	buckets []*mapNode[V]
	count   int
}

// NewIntMap creates a map with the given number of buckets.
func NewIntMap[V any](capacity int) *IntMap[V] {
	if capacity <= 0 {
		capacity = DefaultMapCapacity
	}
	return &IntMap[V]{buckets: make([]*mapNode[V], capacity)}
}

func hashKey(key uint64, capacity int) int {
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return int(key % uint64(capacity))
}

// Put stores value under key, overwriting any existing entry.
func (m *IntMap[V]) Put(key uint64, value V) {
	if m == nil {
		return
	}
	if len(m.buckets) == 0 {
		m.buckets = make([]*mapNode[V], DefaultMapCapacity)
	}
	idx := hashKey(key, len(m.buckets))
	for n := m.buckets[idx]; n != nil; n = n.next {
		if n.key == key {
			n.value = value
			return
		}
	}
	m.buckets[idx] = &mapNode[V]{key: key, value: value, next: m.buckets[idx]}
	m.count++
	if m.count > maxLoad*len(m.buckets) {
		m.resize(len(m.buckets) * 2)
	}
}

func (m *IntMap[V]) resize(capacity int) {
	buckets := make([]*mapNode[V], capacity)
	for _, head := range m.buckets {
		for n := head; n != nil; {
			next := n.next
			idx := hashKey(n.key, capacity)
			n.next = buckets[idx]
			buckets[idx] = n
			n = next
		}
	}
	m.buckets = buckets
}

func (m *IntMap[V]) find(key uint64) *mapNode[V] {
	if m == nil || len(m.buckets) == 0 {
		return nil
	}
	for n := m.buckets[hashKey(key, len(m.buckets))]; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}
	return nil
}

// Get returns the value stored under key.
func (m *IntMap[V]) Get(key uint64) (V, bool) {
	if n := m.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *IntMap[V]) Contains(key uint64) bool {
	return m.find(key) != nil
}

// Remove deletes key and reports whether it was present.
func (m *IntMap[V]) Remove(key uint64) bool {
	if m == nil || len(m.buckets) == 0 {
		return false
	}
	idx := hashKey(key, len(m.buckets))
	var prev *mapNode[V]
	for n := m.buckets[idx]; n != nil; n = n.next {
		if n.key != key {
			prev = n
			continue
		}
		if prev == nil {
			m.buckets[idx] = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		m.count--
		return true
	}
	return false
}

// Len returns the number of stored keys.
func (m *IntMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Capacity returns the current bucket count.
func (m *IntMap[V]) Capacity() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// Range calls fn for every entry until fn returns false. fn must not
// mutate the map.
func (m *IntMap[V]) Range(fn func(key uint64, value V) bool) {
	if m == nil || fn == nil {
		return
	}
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			if !fn(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns a snapshot of all keys.
func (m *IntMap[V]) Keys() []uint64 {
	if m == nil || m.count == 0 {
		return nil
	}
	keys := make([]uint64, 0, m.count)
	m.Range(func(key uint64, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Clear removes every entry and keeps the bucket count.
func (m *IntMap[V]) Clear() {
	if m == nil {
		return
	}
	clear(m.buckets)
	m.count = 0
}
