package refstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	RecordInsert(duration time.Duration)

	// RecordGet is called after each successful ref resolution.
	RecordGet(duration time.Duration)

	// RecordClean is called after each sweep. removed is the number of
	// slots reclaimed.
	RecordClean(removed int, duration time.Duration)

	// RecordRemove is called after each eager removal attempt. freed is
	// true when the slot was actually reclaimed.
	RecordRemove(freed bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration)       {}
func (NoopMetricsCollector) RecordGet(time.Duration)          {}
func (NoopMetricsCollector) RecordClean(int, time.Duration)   {}
func (NoopMetricsCollector) RecordRemove(bool, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertTotalNanos atomic.Int64
	GetCount         atomic.Int64
	GetTotalNanos    atomic.Int64
	CleanCount       atomic.Int64
	CleanRemoved     atomic.Int64
	RemoveCount      atomic.Int64
	RemoveFreed      atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(duration time.Duration) {
	b.GetCount.Add(1)
	b.GetTotalNanos.Add(duration.Nanoseconds())
}

// RecordClean implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClean(removed int, duration time.Duration) {
	b.CleanCount.Add(1)
	b.CleanRemoved.Add(int64(removed))
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(freed bool, duration time.Duration) {
	b.RemoveCount.Add(1)
	if freed {
		b.RemoveFreed.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertAvgNanos: avgNanos(b.InsertCount.Load(), b.InsertTotalNanos.Load()),
		GetCount:       b.GetCount.Load(),
		GetAvgNanos:    avgNanos(b.GetCount.Load(), b.GetTotalNanos.Load()),
		CleanCount:     b.CleanCount.Load(),
		CleanRemoved:   b.CleanRemoved.Load(),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveFreed:    b.RemoveFreed.Load(),
	}
}

func avgNanos(count, total int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertAvgNanos int64
	GetCount       int64
	GetAvgNanos    int64
	CleanCount     int64
	CleanRemoved   int64
	RemoveCount    int64
	RemoveFreed    int64
}
