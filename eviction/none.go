package eviction

// none is the policy of the unbounded cache. It never picks a victim;
// it only remembers insertion order so Keys is deterministic.
type none[K comparable] struct {
	order *orderList[K]
}

func newNone[K comparable]() *none[K] {
	return &none[K]{order: newOrderList[K]()}
}

func (n *none[K]) OnPut(k K) { n.order.pushBack(k) }

func (n *none[K]) Evict(K) (K, bool) {
	var zero K
	return zero, false
}

func (n *none[K]) Keys() []K { return n.order.keys() }

func (n *none[K]) Len() int { return n.order.len() }
