package cache

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"sync"

	api "github.com/krisalay/bounded-cache/api"
	"github.com/krisalay/bounded-cache/engine"
	evict "github.com/krisalay/bounded-cache/eviction"
	"github.com/krisalay/bounded-cache/store"
	"github.com/krisalay/bounded-cache/types"
	"golang.org/x/sync/singleflight"
)

var _ api.Cache[string, any] = (*BoundedCache[string, any])(nil)

// ErrInvalidCapacity is returned when a bounded policy is given a capacity below 1.
var ErrInvalidCapacity = errors.New("capacity must be greater than zero")

/*
BoundedCache is the main cache implementation.
This struct is the orchestrator that connects:
- storage
- eviction
- discard notification, metrics and logging (the engine)
- read-through loading

Every method is safe for concurrent use. One lock guards the store and the
policy together, so a write, its eviction and the discard notification are
seen by other callers as a single step.
*/
type BoundedCache[K comparable, V any] struct {
	mu sync.RWMutex

	// store holds the actual key → value data.
	store store.Store[K, V]

	// eviction tracks key order and picks the victim when the store overflows.
	eviction evict.Policy[K]

	// policy is the strategy eviction was built from.
	policy evict.PolicyType

	// engine contains the side effects of the cache: notifier, metrics, logger, loader.
	engine *engine.CacheEngine[K, V]

	// capacity is the maximum number of entries. 0 means unbounded.
	capacity int

	// singleflight prevents concurrent GetOrLoad calls from loading the same key twice.
	sf singleflight.Group

	// loadIDs maps a key with a load in flight to its singleflight id.
	loadMu  sync.Mutex
	loadIDs map[K]string
	loadSeq uint64
}

/*
NewBoundedCache creates an empty cache.

FIFO and LIFO need a capacity of at least 1. The None policy ignores capacity.
A nil engine is replaced with a default one: no loader, no notifier, no metrics, no logs.
*/
func NewBoundedCache[K comparable, V any](
	capacity int,
	policy evict.PolicyType,
	engine *engine.CacheEngine[K, V],
) (*BoundedCache[K, V], error) {

	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %q", evict.ErrUnknownPolicy, policy)
	}
	if policy.Bounded() && capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if !policy.Bounded() {
		capacity = 0
	}
	if engine == nil {
		engine = newDefaultEngine[K, V]()
	}

	return &BoundedCache[K, V]{
		store:    store.NewMapStore[K, V](),
		eviction: evict.NewEvictionPolicy[K](policy),
		policy:   policy,
		engine:   engine,
		capacity: capacity,
	}, nil
}

// MustNewBoundedCache is like NewBoundedCache but panics on error.
func MustNewBoundedCache[K comparable, V any](
	capacity int,
	policy evict.PolicyType,
	engine *engine.CacheEngine[K, V],
) *BoundedCache[K, V] {
	c, err := NewBoundedCache(capacity, policy, engine)
	if err != nil {
		panic(err)
	}
	return c
}

func newDefaultEngine[K comparable, V any]() *engine.CacheEngine[K, V] {
	return engine.NewCacheEngine[K, V](nil, nil, nil, nil)
}

/*
Put stores a value in the cache.

1. An absent key or value makes the call a no-op
2. The value is written (an existing key keeps its entry, the value is replaced)
3. The policy records the write
4. If the cache is now over capacity, exactly one victim is removed and reported

Put never fails.
*/
func (c *BoundedCache[K, V]) Put(key K, value V) {
	if types.IsAbsent(key) || types.IsAbsent(value) {
		c.engine.OnReject(key)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	created := c.store.Put(key, value)
	c.eviction.OnPut(key)
	c.engine.OnWrite(key, created)

	// An overwrite never grows the store, so only a new key can overflow it.
	if c.capacity == 0 || c.store.Size() <= c.capacity {
		return
	}

	victim, ok := c.eviction.Evict(key)
	if !ok {
		return
	}
	c.store.Delete(victim)
	c.engine.OnEvict(victim)
}

// Get returns the value stored for key and whether it was found.
// It does not change eviction order.
func (c *BoundedCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.store.Get(key)
	c.engine.OnRead(ok)
	if !ok {
		var zero V
		return zero, false
	}
	return ent.Value, true
}

/*
GetOrLoad returns the cached value for key, or loads it through the engine's Loader.

singleflight ensures that:
- If 100 goroutines request the same missing key,
  only ONE of them calls the Loader.
- Others wait for the result.

Loads are grouped by the key itself, so keys that print the same never share a load.
The Loader gets ctx without its cancellation: a caller whose ctx ends stops
waiting and returns ctx.Err(), while the load goes on for the other callers
and its value is still stored.
A loaded value goes through Put, so it may evict another key, and an absent
loaded value is returned but not stored.
*/
func (c *BoundedCache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	id := c.loadID(key)
	ch := c.sf.DoChan(id, func() (any, error) {
		defer c.loadDone(key, id)

		// another caller may have filled the key while we waited for the group
		if v, ok := c.peek(key); ok {
			return v, nil
		}
		v, err := c.engine.Load(context.WithoutCancel(ctx), key)
		if err != nil {
			return nil, err
		}
		c.Put(key, v)
		return v, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(V)
		return v, nil
	}
}

// loadID returns the singleflight id of the load for key, starting a new one
// when no load of key is in flight. Ids are never reused.
func (c *BoundedCache[K, V]) loadID(key K) string {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	if id, ok := c.loadIDs[key]; ok {
		return id
	}
	if c.loadIDs == nil {
		c.loadIDs = make(map[K]string)
	}
	c.loadSeq++
	id := strconv.FormatUint(c.loadSeq, 10)
	c.loadIDs[key] = id
	return id
}

func (c *BoundedCache[K, V]) loadDone(key K, id string) {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	if c.loadIDs[key] == id {
		delete(c.loadIDs, key)
	}
}

// peek is Get without metrics.
func (c *BoundedCache[K, V]) peek(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.store.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return ent.Value, true
}

// Len returns the number of stored entries.
func (c *BoundedCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Size()
}

// Capacity returns the fixed capacity. 0 means the cache is unbounded.
func (c *BoundedCache[K, V]) Capacity() int {
	return c.capacity
}

// Policy returns the eviction strategy the cache was built with.
func (c *BoundedCache[K, V]) Policy() evict.PolicyType {
	return c.policy
}

// Keys returns the stored keys in eviction order.
// For FIFO the first key is the next victim; for LIFO the last key is.
func (c *BoundedCache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.eviction.Keys()
}

// Entries returns a copy of every entry, in Keys order.
func (c *BoundedCache[K, V]) Entries() []types.Entry[K, V] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := c.eviction.Keys()
	out := make([]types.Entry[K, V], 0, len(keys))
	for _, k := range keys {
		if ent, ok := c.store.Get(k); ok {
			out = append(out, *ent)
		}
	}
	return out
}

/*
Print writes a human readable dump of the cache:

	Current cache:
	A: Hello
	B: World

Lines are sorted by key. Integer, float and string keys compare by value,
any other key by its printed form.
*/
func (c *BoundedCache[K, V]) Print(w io.Writer) error {
	entries := c.Entries()
	slices.SortStableFunc(entries, func(a, b types.Entry[K, V]) int {
		return compareKeys(a.Key, b.Key)
	})

	if _, err := fmt.Fprintln(w, "Current cache:"); err != nil {
		return err
	}
	for _, ent := range entries {
		if _, err := fmt.Fprintf(w, "%v: %v\n", ent.Key, ent.Value); err != nil {
			return err
		}
	}
	return nil
}

// compareKeys orders two keys of the same ordered kind by value.
// Mixed kinds and unordered kinds fall back to the printed form.
func compareKeys(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() && va.Kind() == vb.Kind() {
		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(va.Int(), vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(va.Uint(), vb.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(va.Float(), vb.Float())
		case reflect.String:
			return cmp.Compare(va.String(), vb.String())
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
