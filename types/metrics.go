package types

// This file defines how the cache reports what it is doing.

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache calls these methods
while it holds its lock, so implementations must be fast and must not call back into the cache.
*/
type Metrics interface {

	// Hit is called when Get finds the key.
	Hit()

	// Miss is called when Get does NOT find the key.
	Miss()

	// Write is called when Put stores a value (new key or overwrite).
	Write()

	// Reject is called when Put is ignored because the key or the value is absent.
	Reject()

	// Eviction is called when a key is removed because the cache went over capacity.
	Eviction()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

Callers that do not care about metrics get this one,
so the cache never has to check for a nil Metrics.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Write()    {}
func (NoopMetrics) Reject()   {}
func (NoopMetrics) Eviction() {}
