package ecs

import "testing"

func TestIntMapPutGet(t *testing.T) {
	m := NewIntMap[string](4)
	m.Put(1, "a")
	m.Put(2, "b")
	m.Put(1, "c")

	if m.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", m.Len())
	}
	if v, ok := m.Get(1); !ok || v != "c" {
		t.Fatalf("expected overwrite to c, got %q ok=%v", v, ok)
	}
	if _, ok := m.Get(3); ok {
		t.Fatalf("missing key reported present")
	}
	if !m.Contains(2) || m.Contains(3) {
		t.Fatalf("contains mismatch")
	}
}

func TestIntMapChainedRemove(t *testing.T) {
	m := NewIntMap[int](1)
	for k := uint64(1); k <= 4; k++ {
		m.Put(k, int(k)*10)
	}
	// collapse into one bucket so removals walk a single chain
	m.resize(1)

	cases := []struct {
		name string
		key  uint64
	}{
		{"remove_4", 4},
		{"remove_2", 2},
		{"remove_1", 1},
		{"remove_3", 3},
	}
	remaining := map[uint64]int{1: 10, 2: 20, 3: 30, 4: 40}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !m.Remove(c.key) {
				t.Fatalf("remove %d failed", c.key)
			}
			delete(remaining, c.key)
			if m.Contains(c.key) {
				t.Fatalf("key %d still present", c.key)
			}
			if m.Len() != len(remaining) {
				t.Fatalf("expected len %d, got %d", len(remaining), m.Len())
			}
			for k, want := range remaining {
				if got, ok := m.Get(k); !ok || got != want {
					t.Fatalf("key %d: expected %d, got %d ok=%v", k, want, got, ok)
				}
			}
		})
	}
	if m.Remove(1) {
		t.Fatalf("removing a missing key must fail")
	}
}

func TestIntMapResize(t *testing.T) {
	m := NewIntMap[uint64](2)
	for k := uint64(0); k < 100; k++ {
		m.Put(k, k*k)
	}
	if m.Capacity() <= 2 {
		t.Fatalf("expected map to grow, capacity %d", m.Capacity())
	}
	if m.Len() != 100 {
		t.Fatalf("expected 100 keys, got %d", m.Len())
	}
	for k := uint64(0); k < 100; k++ {
		if v, ok := m.Get(k); !ok || v != k*k {
			t.Fatalf("key %d lost after resize: %d ok=%v", k, v, ok)
		}
	}
}

func TestIntMapRangeAndClear(t *testing.T) {
	m := NewIntMap[int](0)
	if m.Capacity() != DefaultMapCapacity {
		t.Fatalf("expected default capacity, got %d", m.Capacity())
	}
	for k := uint64(1); k <= 5; k++ {
		m.Put(k, 1)
	}
	sum := 0
	m.Range(func(_ uint64, v int) bool {
		sum += v
		return true
	})
	if sum != 5 {
		t.Fatalf("expected range over 5 entries, got %d", sum)
	}
	if len(m.Keys()) != 5 {
		t.Fatalf("expected 5 keys")
	}

	visited := 0
	m.Range(func(uint64, int) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Fatalf("range must stop when fn returns false, visited %d", visited)
	}

	m.Clear()
	if m.Len() != 0 || m.Contains(1) {
		t.Fatalf("map not empty after clear")
	}
}

func TestHashKeyInRange(t *testing.T) {
	for _, capacity := range []int{1, 7, 64} {
		for k := uint64(0); k < 1000; k += 37 {
			if h := hashKey(k, capacity); h < 0 || h >= capacity {
				t.Fatalf("hash %d out of range for capacity %d", h, capacity)
			}
		}
	}
}
