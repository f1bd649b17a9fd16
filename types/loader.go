package types

import "context"

// Loader is the contract between the cache and whatever can produce a value it does not hold.
type Loader[K comparable, V any] interface {

	/*
		Load is called when the cache misses on a read-through lookup.
		1. Cache checks memory → key not found
		2. Cache calls Load(key)
		3. Loader computes or fetches the value
		4. Cache stores the result with normal Put semantics (eviction included)
		5. Cache returns the value
	*/
	Load(ctx context.Context, key K) (V, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Load calls f(ctx, key).
func (f LoaderFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}
