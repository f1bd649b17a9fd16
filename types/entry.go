package types

import "time"

// Entry is one stored (key, value) pair.
// CreatedAt is set on the first write of the key and survives overwrites.
type Entry[K comparable, V any] struct {
	Key       K
	Value     V
	CreatedAt time.Time
	UpdatedAt time.Time
}
