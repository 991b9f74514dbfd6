// Package randmap provides an associative container that supports the usual
// map operations plus uniformly-random entry selection, all in O(1).
//
// The container keeps three co-maintained structures: the primary key-value
// map, a dense slice of the present keys, and a key-to-position map. Deletion
// fills the vacated slot with the last key (swap-with-last), so removing an
// entry never shifts the rest of the slice. The slice order is an
// implementation artifact and is never exposed as a guarantee; it only serves
// as the substrate for uniform random indexing.
//
// The container performs no locking. A shared instance must be guarded by the
// owner, the same as an ordinary Go map.
package randmap

import (
	"math/rand"
	"time"
)

// Entry is a key-value pair used for bulk construction.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a key-value store with O(1) insert, lookup, delete and uniform
// random selection. The zero value is not usable; create one with New or
// NewFrom.
type Map[K comparable, V any] struct {
	entries map[K]V
	keys    []K // dense list of present keys, arbitrary order
	index   map[K]int
	rng     *rand.Rand
}

// Option configures a Map during construction.
type Option[K comparable, V any] func(*Map[K, V])

// WithRand injects the random source used by Random. Passing a seeded
// generator makes selection deterministic, which tests rely on.
func WithRand[K comparable, V any](rng *rand.Rand) Option[K, V] {
	return func(m *Map[K, V]) {
		m.rng = rng
	}
}

// New creates an empty Map.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		entries: make(map[K]V),
		index:   make(map[K]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m
}

// NewFrom creates a Map pre-populated with the given entries. Each entry goes
// through the normal Set path, so later entries overwrite earlier ones with
// the same key.
func NewFrom[K comparable, V any](entries []Entry[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New[K, V](opts...)
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set inserts a new key or updates the value of an existing one. Updating
// never moves the key within the dense list.
func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.entries[key]; !ok {
		m.index[key] = len(m.keys)
		m.keys = append(m.keys, key)
	}
	m.entries[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	value, ok := m.entries[key]
	return value, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Delete removes key and reports whether an entry was removed. The vacated
// slot in the dense list is filled by the current last key, keeping deletion
// O(1) regardless of the key's position.
func (m *Map[K, V]) Delete(key K) bool {
	pos, ok := m.index[key]
	if !ok {
		return false
	}

	last := len(m.keys) - 1
	if pos != last {
		moved := m.keys[last]
		m.keys[pos] = moved
		m.index[moved] = pos
	}
	m.keys = m.keys[:last]

	delete(m.entries, key)
	delete(m.index, key)
	return true
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
	clear(m.index)
	m.keys = m.keys[:0]
}

// Random returns a uniformly-random entry, or false if the map is empty.
// Every present key is equally likely, independent of insertion order.
func (m *Map[K, V]) Random() (K, V, bool) {
	if len(m.keys) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	key := m.keys[m.rng.Intn(len(m.keys))]
	return key, m.entries[key], true
}

// Keys returns a copy of the present keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}
