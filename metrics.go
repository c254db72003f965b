package querygo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    passCounter   prometheus.Counter
//	    passHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordPass(scanned, matched int, duration time.Duration) {
//	    p.passCounter.Inc()
//	    // ... record duration, match ratio, etc.
//	}
type MetricsCollector interface {
	// RecordPass is called after each full filter pass over a dataset.
	// scanned is the number of records visited, matched the number that
	// passed the predicate chain.
	RecordPass(scanned, matched int, duration time.Duration)

	// RecordLockedPass is called after each pass over a lock-guarded
	// collection. locks is the number of element locks acquired, err is nil
	// if the pass completed.
	RecordLockedPass(locks int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPass(int, int, time.Duration)         {}
func (NoopMetricsCollector) RecordLockedPass(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PassCount        atomic.Int64
	PassScanned      atomic.Int64
	PassMatched      atomic.Int64
	PassTotalNanos   atomic.Int64
	LockedPassCount  atomic.Int64
	LockedPassLocks  atomic.Int64
	LockedPassErrors atomic.Int64
	LockedPassNanos  atomic.Int64
}

// RecordPass implements MetricsCollector.
func (c *BasicMetricsCollector) RecordPass(scanned, matched int, duration time.Duration) {
	c.PassCount.Add(1)
	c.PassScanned.Add(int64(scanned))
	c.PassMatched.Add(int64(matched))
	c.PassTotalNanos.Add(duration.Nanoseconds())
}

// RecordLockedPass implements MetricsCollector.
func (c *BasicMetricsCollector) RecordLockedPass(locks int, duration time.Duration, err error) {
	c.LockedPassCount.Add(1)
	c.LockedPassLocks.Add(int64(locks))
	if err != nil {
		c.LockedPassErrors.Add(1)
	}
	c.LockedPassNanos.Add(duration.Nanoseconds())
}

// Stats is a point-in-time snapshot of a BasicMetricsCollector.
type Stats struct {
	PassCount       int64
	PassScanned     int64
	PassMatched     int64
	PassAvgNanos    int64
	LockedPassCount int64
	LockedPassLocks int64
}

// GetStats returns a snapshot of the collected metrics.
func (c *BasicMetricsCollector) GetStats() Stats {
	s := Stats{
		PassCount:       c.PassCount.Load(),
		PassScanned:     c.PassScanned.Load(),
		PassMatched:     c.PassMatched.Load(),
		LockedPassCount: c.LockedPassCount.Load(),
		LockedPassLocks: c.LockedPassLocks.Load(),
	}
	if s.PassCount > 0 {
		s.PassAvgNanos = c.PassTotalNanos.Load() / s.PassCount
	}
	return s
}
