package geomcore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting solver metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSolve is called after each solve run. iterations is the number
	// of Newton steps taken, duration the total time, err nil on success.
	RecordSolve(iterations int, duration time.Duration, err error)

	// RecordIteration is called after each Newton step. err is non-nil
	// when the step's linear system was singular.
	RecordIteration(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount          atomic.Int64
	SolveErrors         atomic.Int64
	SolveIterations     atomic.Int64
	SolveTotalNanos     atomic.Int64
	IterationCount      atomic.Int64
	IterationErrors     atomic.Int64
	IterationTotalNanos atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (c *BasicMetricsCollector) RecordSolve(iterations int, duration time.Duration, err error) {
	c.SolveCount.Add(1)
	c.SolveIterations.Add(int64(iterations))
	c.SolveTotalNanos.Add(int64(duration))
	if err != nil {
		c.SolveErrors.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (c *BasicMetricsCollector) RecordIteration(duration time.Duration, err error) {
	c.IterationCount.Add(1)
	c.IterationTotalNanos.Add(int64(duration))
	if err != nil {
		c.IterationErrors.Add(1)
	}
}
