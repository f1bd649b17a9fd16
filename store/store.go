package store

import (
	"time"

	"github.com/krisalay/bounded-cache/types"
)

/*
This file defines how data is actually stored inside a cache.

The store is a plain key → entry map. It knows nothing about order or capacity:
the eviction policy tracks order, and the cache decides when to delete.
The store is NOT safe for concurrent use; the owning cache guards it together
with its policy under a single lock, because every eviction reads and mutates both.
*/

// Store is the interface used by a cache to store and retrieve entries.
type Store[K comparable, V any] interface {

	// Get retrieves an entry by key.
	Get(K) (*types.Entry[K, V], bool)

	// Put inserts or replaces the value for a key.
	// It reports whether the key was new.
	Put(K, V) bool

	// Delete removes an entry.
	Delete(K)

	// Size returns how many entries are stored.
	Size() int
}

type mapStore[K comparable, V any] struct {
	data map[K]*types.Entry[K, V]

	// now is the clock used for entry timestamps.
	now func() time.Time
}

// NewMapStore returns an empty map-backed Store.
func NewMapStore[K comparable, V any]() Store[K, V] {
	return &mapStore[K, V]{
		data: make(map[K]*types.Entry[K, V]),
		now:  time.Now,
	}
}

// Get retrieves an entry from the store.
func (s *mapStore[K, V]) Get(key K) (*types.Entry[K, V], bool) {
	ent, ok := s.data[key]
	return ent, ok
}

/*
Put inserts or updates an entry in the store.

An overwrite replaces the value in place and keeps CreatedAt,
so the entry remembers when the key first appeared.
*/
func (s *mapStore[K, V]) Put(key K, value V) bool {
	now := s.now()
	if ent, ok := s.data[key]; ok {
		ent.Value = value
		ent.UpdatedAt = now
		return false
	}
	s.data[key] = &types.Entry[K, V]{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return true
}

// Delete removes an entry from the store.
func (s *mapStore[K, V]) Delete(key K) {
	delete(s.data, key)
}

// Size returns how many entries are in the store.
func (s *mapStore[K, V]) Size() int {
	return len(s.data)
}
