package ecs

import "strconv"

// Entity is a generational handle: the low 32 bits are a slot index and the
// high 32 bits the slot generation. The zero value is invalid.
type Entity uint64

type entityIndex uint32
type generation uint32

const entityIndexBits = 32

func makeEntity(idx entityIndex, gen generation) Entity {
	return Entity(uint64(gen)<<entityIndexBits | uint64(idx))
}

func (e Entity) index() entityIndex {
	return entityIndex(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIndexBits))
}

// String formats e as index "v" generation, e.g. 3v1.
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.index()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e can refer to an entity. It does not check liveness.
func (e Entity) Valid() bool {
	return e.index() > 0
}
