package eviction

import (
	"errors"
	"fmt"
	"strings"
)

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

// ErrUnknownPolicy is returned when a policy name does not match any supported strategy.
var ErrUnknownPolicy = errors.New("unknown eviction policy")

/*
Policy is the interface that all eviction strategies must follow.

The policy owns the ORDER of keys, the store owns the values.
The cache calls these methods under its own lock, so a policy keeps no lock of its own.

Reads never reach the policy: this is a write-order scheme, not a recently-used scheme.
*/
type Policy[K comparable] interface {

	// OnPut is called after a key has been written to the store,
	// both for new keys and for overwrites.
	//
	// FIFO only records the first write. LIFO moves the key to "most recent" every time.
	OnPut(K)

	// Evict is called when the store holds one entry more than the capacity.
	//
	// just is the key whose write caused the overflow. It always survives.
	// The policy forgets the victim and returns it; the cache removes it from the store.
	// ok is false when the policy never evicts or has nothing else to offer.
	Evict(just K) (victim K, ok bool)

	// Keys returns tracked keys in eviction order:
	// front is the oldest position, back is the most recent write.
	Keys() []K

	// Len returns the number of tracked keys.
	Len() int
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// None never evicts. The cache is unbounded.
	None PolicyType = "none"

	// FIFO (First In First Out): evicts the key that was first inserted, overwrites do not count.
	FIFO PolicyType = "fifo"

	// LIFO (Last In First Out): evicts the key written most recently before the current write.
	// Overwrites count as writes.
	LIFO PolicyType = "lifo"
)

// Valid reports whether t names a supported policy.
func (t PolicyType) Valid() bool {
	switch t {
	case None, FIFO, LIFO:
		return true
	default:
		return false
	}
}

// Bounded reports whether the policy enforces a capacity.
func (t PolicyType) Bounded() bool {
	return t == FIFO || t == LIFO
}

func (t PolicyType) String() string { return string(t) }

// ParsePolicyType turns a user-supplied name ("FIFO", "lifo", "none", "") into a PolicyType.
// The empty string and "basic" both mean None.
func ParsePolicyType(s string) (PolicyType, error) {
	switch t := PolicyType(strings.ToLower(strings.TrimSpace(s))); t {
	case "", "basic", "unbounded":
		return None, nil
	case None, FIFO, LIFO:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// NewEvictionPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
func NewEvictionPolicy[K comparable](t PolicyType) Policy[K] {
	switch t {
	case None:
		return newNone[K]()
	case FIFO:
		return newFIFO[K]()
	case LIFO:
		return newLIFO[K]()
	default:
		panic("unknown eviction policy")
	}
}
