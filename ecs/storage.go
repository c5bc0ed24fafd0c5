package ecs

// entityAllocator hands out entity handles. Slots are recycled only after
// a free, and every free bumps the slot generation, so a handle value is
// never valid twice.
type entityAllocator struct {
	gen  []generation
	free []entityIndex
}

func (s *entityAllocator) create() Entity {
	var idx entityIndex
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		idx = entityIndex(len(s.gen))
	}
	return makeEntity(idx, s.gen[idx-1])
}

func (s *entityAllocator) release(e Entity) bool {
	idx := e.index()
	if idx == 0 || int(idx) > len(s.gen) || s.gen[idx-1] != e.generation() {
		return false
	}
	s.gen[idx-1]++
	s.free = append(s.free, idx)
	return true
}

// componentStore is the type-erased storage of one component type: entity
// -> data plus the per-type entity list.
type componentStore struct {
	data *IntMap[any]
	list *Array[Entity]
}

func newComponentStore() *componentStore {
	return &componentStore{
		data: NewIntMap[any](0),
		list: NewArray[Entity](),
	}
}

func (s *componentStore) has(e Entity) bool {
	return s.data.Contains(uint64(e))
}

func (s *componentStore) get(e Entity) (any, bool) {
	return s.data.Get(uint64(e))
}

func (s *componentStore) set(e Entity, value any) {
	if !s.data.Contains(uint64(e)) {
		s.list.Add(e)
	}
	s.data.Put(uint64(e), value)
}

func (s *componentStore) remove(e Entity) bool {
	if !s.data.Remove(uint64(e)) {
		return false
	}
	if i := s.list.IndexFunc(func(other Entity) bool { return other == e }); i >= 0 {
		s.list.Remove(i)
	}
	return true
}

func (s *componentStore) entities() []Entity {
	return s.list.Items()
}

func (s *componentStore) len() int {
	return s.list.Len()
}

func (s *componentStore) clear() {
	s.data.Clear()
	s.list.Free()
}
