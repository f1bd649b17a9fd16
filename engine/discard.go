package engine

import (
	"fmt"
	"io"

	"github.com/krisalay/bounded-cache/types"
)

// PrintDiscard returns a DiscardFunc that writes "DISCARD: <key>" lines to w.
// Write errors are ignored: a notification can not fail a Put.
func PrintDiscard[K comparable](w io.Writer) types.DiscardFunc[K] {
	return func(key K) {
		_, _ = fmt.Fprintf(w, "DISCARD: %v\n", key)
	}
}

// ChainDiscard returns a DiscardFunc that calls every non-nil fn in order.
func ChainDiscard[K comparable](fns ...types.DiscardFunc[K]) types.DiscardFunc[K] {
	return func(key K) {
		for _, fn := range fns {
			if fn != nil {
				fn(key)
			}
		}
	}
}
