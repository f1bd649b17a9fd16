package cache

/*
Cache defines the PUBLIC API of a bounded in-memory cache.
This is a contract that guarantees certain behaviors, without exposing internals.
Storage, eviction order and discard notification are hidden behind this interface.
*/
type Cache[K comparable, V any] interface {

	/*
		Put stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- An absent key or absent value (nil) is silently ignored
		- Stores the value in memory, replacing any previous value for the key
		- If the cache is now over capacity, exactly ONE entry is evicted
		  according to the eviction policy and reported to the discard notifier
		  before Put returns

		Put never returns an error.
	*/
	Put(key K, value V)

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		---------
		- Returns the value exactly as stored and true if the key is present
		- Returns the zero value and false otherwise
		- Never changes eviction order
	*/
	Get(key K) (V, bool)

	// Len returns the number of stored entries.
	Len() int

	// Capacity returns the fixed capacity. 0 means unbounded.
	Capacity() int

	// Keys returns the stored keys in eviction order.
	Keys() []K
}
