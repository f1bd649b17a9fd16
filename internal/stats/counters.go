// Package stats provides a lock-free types.Metrics implementation.
package stats

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/krisalay/bounded-cache/types"
)

var _ types.Metrics = (*Counters)(nil)

// Counters counts cache events. The zero value is ready to use.
type Counters struct {
	hits      atomic.Int64
	misses    atomic.Int64
	writes    atomic.Int64
	rejects   atomic.Int64
	evictions atomic.Int64
}

func (c *Counters) Hit()      { c.hits.Add(1) }
func (c *Counters) Miss()     { c.misses.Add(1) }
func (c *Counters) Write()    { c.writes.Add(1) }
func (c *Counters) Reject()   { c.rejects.Add(1) }
func (c *Counters) Eviction() { c.evictions.Add(1) }

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Writes    int64 `json:"writes"`
	Rejects   int64 `json:"rejects"`
	Evictions int64 `json:"evictions"`
}

// Snapshot reads every counter. Counters may move between reads.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Writes:    c.writes.Load(),
		Rejects:   c.rejects.Load(),
		Evictions: c.evictions.Load(),
	}
}

// HitRatio returns hits / (hits + misses), or 0 before any read.
func (s Snapshot) HitRatio() float64 {
	reads := s.Hits + s.Misses
	if reads == 0 {
		return 0
	}
	return float64(s.Hits) / float64(reads)
}

// Print writes the snapshot as an aligned block.
func (s Snapshot) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"HITS      : %d\nMISSES    : %d\nWRITES    : %d\nREJECTS   : %d\nEVICTIONS : %d\n",
		s.Hits, s.Misses, s.Writes, s.Rejects, s.Evictions)
	return err
}
