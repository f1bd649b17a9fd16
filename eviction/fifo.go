// This file implements FIFO eviction.

package eviction

type fifo[K comparable] struct {
	// order keeps keys in the order they were FIRST inserted.
	// The head is the oldest key.
	order *orderList[K]
}

func newFIFO[K comparable]() *fifo[K] {
	return &fifo[K]{order: newOrderList[K]()}
}

// OnPut is called after a key is written to the store.
// If the key is already being tracked: Do nothing. FIFO only cares about the first insertion,
// so overwriting a key does not give it a fresh position.
// If the key is new: Add it to the end of the queue.
func (f *fifo[K]) OnPut(k K) {
	f.order.pushBack(k)
}

// Evict returns the oldest surviving key and stops tracking it.
func (f *fifo[K]) Evict(just K) (K, bool) {
	k, ok := f.order.firstFromFront(just)
	if ok {
		f.order.remove(k)
	}
	return k, ok
}

func (f *fifo[K]) Keys() []K { return f.order.keys() }

func (f *fifo[K]) Len() int { return f.order.len() }
