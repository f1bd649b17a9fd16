package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	cache "github.com/krisalay/bounded-cache"
	"github.com/krisalay/bounded-cache/engine"
	"github.com/krisalay/bounded-cache/eviction"
	"github.com/krisalay/bounded-cache/internal/logging"
	"github.com/krisalay/bounded-cache/internal/stats"
)

// ================= BENCHMARK =================

func main() {
	logger := logging.New(logging.DefaultConfig())

	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")

	// ---------------- Cache Config ----------------
	const (
		capacity   = 100000
		keySpace   = 150000
		goroutines = 200
		opsPerG    = 5000
	)

	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Key Space    :", keySpace)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)

	for _, policy := range []eviction.PolicyType{eviction.None, eviction.FIFO, eviction.LIFO} {
		counters := &stats.Counters{}
		c, err := cache.NewBoundedCache(
			capacity,
			policy,
			engine.NewCacheEngine[int, int](nil, nil, counters, &logger),
		)
		if err != nil {
			logger.Error().Err(err).Str("policy", policy.String()).Msg("failed to create cache")
			os.Exit(1)
		}

		start := time.Now()

		// ---------------- Mixed Load ----------------
		var wg sync.WaitGroup
		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				for i := 0; i < opsPerG; i++ {
					key := (g*opsPerG + i*7919) % keySpace
					if i%4 == 0 {
						c.Put(key, i)
						continue
					}
					c.Get(key)
				}
			}(g)
		}
		wg.Wait()

		elapsed := time.Since(start)
		totalOps := goroutines * opsPerG
		s := counters.Snapshot()

		fmt.Printf("\n---------------- %s ----------------\n", policy)
		fmt.Printf("Total Ops    : %d\n", totalOps)
		fmt.Printf("Time Taken   : %s\n", elapsed)
		fmt.Printf("Throughput   : %.0f ops/sec\n", float64(totalOps)/elapsed.Seconds())
		fmt.Printf("Hit Ratio    : %.2f%%\n", s.HitRatio()*100)
		fmt.Printf("Entries      : %d\n", c.Len())
		_ = s.Print(os.Stdout)
	}

	fmt.Println("\n================ BENCHMARK COMPLETE =================")
}
