package chmap

import (
	"errors"

	"github.com/google/go-cmp/cmp"
)

// ErrCapacity is returned by New when the requested capacity
// is smaller than one slot.
var ErrCapacity = errors.New("capacity must be positive")

type KeyInterface interface{ string | []byte }

type entry[K KeyInterface, V any] struct {
	Key   K
	Value V
	Next  *entry[K, V]
}

// Map is backed by a fixed-size slot array indexed by hash(key)%capacity.
// Entries colliding on a slot form a singly linked chain in insertion
// order. The capacity never changes after New; the map never rehashes.
type Map[K KeyInterface, V any] struct {
	slots  []*entry[K, V]
	hasher Hasher[K]
}

// New creates a new map instance with the given fixed capacity.
// If hasher is nil the zero-seeded times-33 hasher is used.
func New[K KeyInterface, V any](
	capacity int,
	hasher Hasher[K],
) (*Map[K, V], error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}
	if hasher == nil {
		hasher = HasherTimes33[K]{}
	}
	return &Map[K, V]{
		slots:  make([]*entry[K, V], capacity),
		hasher: hasher,
	}, nil
}

// Capacity returns the fixed number of slots.
func (m *Map[K, V]) Capacity() int { return len(m.slots) }

// Len returns the number of stored key-value pairs.
// The count isn't tracked, it's derived by walking all chains.
func (m *Map[K, V]) Len() (n int) {
	for _, e := range m.slots {
		for ; e != nil; e = e.Next {
			n++
		}
	}
	return n
}

func (m *Map[K, V]) slot(key K) uint64 {
	return m.hasher.Hash(key) % uint64(len(m.slots))
}

// copyKey detaches key from caller-owned memory.
// String keys are immutable already; []byte keys are cloned.
func copyKey[K KeyInterface](key K) K {
	switch k := any(key).(type) {
	case []byte:
		return K(append(make([]byte, 0, len(k)), k...))
	}
	return key
}

// Put associates key with value. If the key already exists its value is
// overwritten in place and the previous value is returned together with
// true. Otherwise a new entry owning a copy of the key is appended at
// the tail of the slot's chain (entries never move, so lookup priority
// of older entries is preserved) and the stored value is returned
// together with false. The map never grows; collisions only ever extend
// the chain.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	i := m.slot(key)
	if m.slots[i] == nil {
		m.slots[i] = &entry[K, V]{Key: copyKey(key), Value: value}
		return value, false
	}
	e := m.slots[i]
	for {
		if string(e.Key) == string(key) {
			prev := e.Value
			e.Value = value
			return prev, true
		}
		if e.Next == nil {
			e.Next = &entry[K, V]{Key: copyKey(key), Value: value}
			return value, false
		}
		e = e.Next
	}
}

// Get returns (value, true) for the first entry in the slot's chain
// whose key matches exactly, otherwise returns (zeroValue, false).
// Get never mutates the map.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	for e := m.slots[m.slot(key)]; e != nil; e = e.Next {
		if string(e.Key) == string(key) {
			return e.Value, true
		}
	}
	return value, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete unlinks the entry matching key and returns its value.
// Returns (zeroValue, false) leaving the map unchanged
// if no entry matches.
func (m *Map[K, V]) Delete(key K) (value V, ok bool) {
	i := m.slot(key)
	var prev *entry[K, V]
	for e := m.slots[i]; e != nil; prev, e = e, e.Next {
		if string(e.Key) != string(key) {
			continue
		}
		if prev == nil {
			m.slots[i] = e.Next
		} else {
			prev.Next = e.Next
		}
		e.Next = nil
		return e.Value, true
	}
	return value, false
}

// Clear drops every chain leaving all slots empty.
// The slot array is retained and the map remains usable.
func (m *Map[K, V]) Clear() {
	for i := range m.slots {
		m.slots[i] = nil
	}
}

// Destroy clears the map and releases the slot array and hasher.
// The map must not be used afterwards; misuse is not detected.
func (m *Map[K, V]) Destroy() {
	m.Clear()
	m.slots = nil
	m.hasher = nil
}

// Visit calls fn for every stored key-value pair, walking slots in
// index order and chains head to tail. Only the within-chain order is
// guaranteed. Returns immediately if fn returns true.
func (m *Map[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for _, e := range m.slots {
		for ; e != nil; e = e.Next {
			if fn(e.Key, e.Value) {
				return
			}
		}
	}
}

// VisitAll calls fn for every stored key-value pair.
func (m *Map[K, V]) VisitAll(fn func(key K, value V)) {
	m.Visit(func(key K, value V) bool {
		fn(key, value)
		return false
	})
}

// VisitSlots calls fn for every stored key-value pair together with the
// index of the slot holding it. It exists so that inspectors can render
// the slot layout without reaching into the map's internals.
// Returns immediately if fn returns true.
func (m *Map[K, V]) VisitSlots(fn func(slot int, key K, value V) (stop bool)) {
	for i, e := range m.slots {
		for ; e != nil; e = e.Next {
			if fn(i, e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns all keys in visit order.
func (m *Map[K, V]) Keys() (keys []K) {
	m.VisitAll(func(key K, value V) {
		keys = append(keys, key)
	})
	return keys
}

// Values returns all map values in visit order.
func (m *Map[K, V]) Values() (values []V) {
	m.VisitAll(func(key K, value V) {
		values = append(values, value)
	})
	return values
}

func (m *Map[K, V]) Equal(mm *Map[K, V]) bool {
	return len(m.slots) == len(mm.slots) &&
		cmp.Equal(m.slots, mm.slots) &&
		m.hasher == mm.hasher
}
