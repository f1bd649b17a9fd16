package eviction

// orderNode represents ONE key inside the order list.
type orderNode[K comparable] struct {
	key K

	// prev points to the node written just before this one
	prev *orderNode[K]

	// next points to the node written just after this one
	next *orderNode[K]
}

/*
orderList is a doubly-linked list of keys plus an index from key to node.
The map gives O(1) lookup, the links give O(1) removal and reordering at any position.

head is the OLDEST position, tail the NEWEST.
*/
type orderList[K comparable] struct {
	nodes map[K]*orderNode[K]
	head  *orderNode[K]
	tail  *orderNode[K]
}

func newOrderList[K comparable]() *orderList[K] {
	return &orderList[K]{nodes: make(map[K]*orderNode[K])}
}

func (l *orderList[K]) contains(k K) bool {
	_, ok := l.nodes[k]
	return ok
}

// pushBack appends a new key at the tail. Keys already tracked are left where they are.
func (l *orderList[K]) pushBack(k K) {
	if l.contains(k) {
		return
	}
	n := &orderNode[K]{key: k}
	l.nodes[k] = n
	l.link(n)
}

// moveToBack marks k as the newest key, adding it if needed.
func (l *orderList[K]) moveToBack(k K) {
	n, ok := l.nodes[k]
	if !ok {
		l.pushBack(k)
		return
	}
	if l.tail == n {
		return
	}
	l.unlink(n)
	l.link(n)
}

// remove forgets k entirely.
func (l *orderList[K]) remove(k K) {
	if n, ok := l.nodes[k]; ok {
		l.unlink(n)
		delete(l.nodes, k)
	}
}

// firstFromFront returns the oldest key that is not skip.
func (l *orderList[K]) firstFromFront(skip K) (K, bool) {
	for n := l.head; n != nil; n = n.next {
		if n.key != skip {
			return n.key, true
		}
	}
	var zero K
	return zero, false
}

// firstFromBack returns the newest key that is not skip.
func (l *orderList[K]) firstFromBack(skip K) (K, bool) {
	for n := l.tail; n != nil; n = n.prev {
		if n.key != skip {
			return n.key, true
		}
	}
	var zero K
	return zero, false
}

func (l *orderList[K]) keys() []K {
	out := make([]K, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.key)
	}
	return out
}

func (l *orderList[K]) len() int { return len(l.nodes) }

// link adds a detached node at the tail.
func (l *orderList[K]) link(n *orderNode[K]) {
	n.prev = l.tail
	n.next = nil
	if l.tail != nil {
		l.tail.next = n
	}
	l.tail = n

	// If the list was empty, head and tail are the same
	if l.head == nil {
		l.head = n
	}
}

// unlink removes a node from the linked list.
// It correctly updates:
// - Previous node's next pointer
// - Next node's prev pointer
// - Head and tail if needed
func (l *orderList[K]) unlink(n *orderNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
