package engine

import (
	"context"
	"errors"

	"github.com/krisalay/bounded-cache/types"
	"github.com/rs/zerolog"
)

// ErrNoLoader is returned by Load when the engine has no Loader configured.
var ErrNoLoader = errors.New("cache engine has no loader")

/*
CacheEngine is the "brain" of the cache system.
It is responsible for the side effects of the cache, NOT storage.

It decides:
- Who is told when a key is discarded
- How events are recorded as metrics
- How events are logged
- How data is loaded on a read-through miss

It does NOT:
- Store data
- Handle locking
- Decide eviction order
*/
type CacheEngine[K comparable, V any] struct {

	// Loader is how the cache fills a miss in GetOrLoad.
	// If this is nil, GetOrLoad fails with ErrNoLoader.
	Loader types.Loader[K, V]

	// OnDiscard is told about every evicted key, synchronously, inside Put.
	// If nil, evictions are only counted and logged.
	OnDiscard types.DiscardFunc[K]

	// Metrics is how we keep track of what the cache is doing.
	Metrics types.Metrics

	// Logger receives debug events for writes, rejections and evictions.
	Logger zerolog.Logger
}

/*
NewCacheEngine creates a CacheEngine.
A nil metrics becomes NoopMetrics and a nil logger becomes a disabled logger.
*/
func NewCacheEngine[K comparable, V any](
	loader types.Loader[K, V],
	onDiscard types.DiscardFunc[K],
	metrics types.Metrics,
	logger *zerolog.Logger,
) *CacheEngine[K, V] {

	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}

	return &CacheEngine[K, V]{
		Loader:    loader,
		OnDiscard: onDiscard,
		Metrics:   metrics,
		Logger:    l,
	}
}

// OnRead records the outcome of a Get.
func (e *CacheEngine[K, V]) OnRead(hit bool) {
	if hit {
		e.Metrics.Hit()
		return
	}
	e.Metrics.Miss()
}

// OnWrite is called after a value has been stored.
func (e *CacheEngine[K, V]) OnWrite(key K, created bool) {
	e.Metrics.Write()
	e.Logger.Debug().
		Interface("key", key).
		Bool("created", created).
		Msg("put")
}

// OnReject is called when Put ignores an absent key or value.
func (e *CacheEngine[K, V]) OnReject(key K) {
	e.Metrics.Reject()
	e.Logger.Debug().
		Interface("key", key).
		Msg("put ignored: absent key or value")
}

/*
OnEvict is called once per eviction, after the key has left the store and before Put returns.

Order:
1. Record the metric
2. Log the discard
3. Notify OnDiscard
*/
func (e *CacheEngine[K, V]) OnEvict(key K) {
	e.Metrics.Eviction()
	e.Logger.Debug().
		Interface("key", key).
		Msg("discard")

	if e.OnDiscard != nil {
		e.OnDiscard(key)
	}
}

/*
Load is used when the cache does NOT have the data.

This usually means:
- Computing an expensive value
- A database call
- A network request
*/
func (e *CacheEngine[K, V]) Load(ctx context.Context, key K) (V, error) {
	if e.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}
	return e.Loader.Load(ctx, key)
}
