// This file implements LIFO eviction.

package eviction

type lifo[K comparable] struct {
	// order keeps keys in the order they were last WRITTEN.
	// The tail is the key written most recently.
	order *orderList[K]
}

func newLIFO[K comparable]() *lifo[K] {
	return &lifo[K]{order: newOrderList[K]()}
}

// OnPut is called after a key is written to the store.
// New keys and overwritten keys both move to the tail: an overwrite counts as the latest write.
func (l *lifo[K]) OnPut(k K) {
	l.order.moveToBack(k)
}

/*
Evict is called right after the write that pushed the cache over capacity.
At that point the key just written sits at the tail, so the victim is the
newest key BEFORE it, which is the tail as it stood before this write.
The key just written is never chosen.
*/
func (l *lifo[K]) Evict(just K) (K, bool) {
	k, ok := l.order.firstFromBack(just)
	if ok {
		l.order.remove(k)
	}
	return k, ok
}

func (l *lifo[K]) Keys() []K { return l.order.keys() }

func (l *lifo[K]) Len() int { return l.order.len() }
