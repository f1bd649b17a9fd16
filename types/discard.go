package types

// DiscardFunc receives the key of every entry the eviction policy removes.
// It runs synchronously inside Put, before Put returns, with the cache lock held.
type DiscardFunc[K comparable] func(key K)
