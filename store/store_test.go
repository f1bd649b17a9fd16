package store

import (
	"testing"
	"time"

	"github.com/krisalay/bounded-cache/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStorePutGetDelete(t *testing.T) {
	s := NewMapStore[string, int]()

	assert.True(t, s.Put("a", 1))
	assert.True(t, s.Put("b", 2))
	assert.Equal(t, 2, s.Size())

	ent, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", ent.Key)
	assert.Equal(t, 1, ent.Value)

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Size())

	s.Delete("missing")
	assert.Equal(t, 1, s.Size())
}

func TestMapStoreOverwriteKeepsCreatedAt(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &mapStore[string, string]{
		data: make(map[string]*types.Entry[string, string]),
		now:  func() time.Time { return clock },
	}

	assert.True(t, s.Put("k", "v1"))
	clock = clock.Add(time.Minute)
	assert.False(t, s.Put("k", "v2"))

	ent, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", ent.Value)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ent.CreatedAt)
	assert.Equal(t, clock, ent.UpdatedAt)
	assert.Equal(t, 1, s.Size())
}
