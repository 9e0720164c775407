package vectordb

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordUpsert is called after each upsert operation.
	RecordUpsert(duration time.Duration)

	// RecordBatchUpsert is called after each batch upsert operation.
	// count is the number of documents written.
	RecordBatchUpsert(count int, duration time.Duration)

	// RecordDelete is called after each delete operation.
	// removed reports whether a document was actually deleted.
	RecordDelete(duration time.Duration, removed bool)

	// RecordSearch is called after each search operation.
	// k is the number of neighbors requested, duration is the time taken,
	// err is nil if successful.
	RecordSearch(k int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordUpsert(time.Duration)             {}
func (NoopMetricsCollector) RecordBatchUpsert(int, time.Duration)   {}
func (NoopMetricsCollector) RecordDelete(time.Duration, bool)       {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	UpsertCount      atomic.Int64
	UpsertTotalNanos atomic.Int64
	BatchUpsertCount atomic.Int64
	BatchUpsertItems atomic.Int64
	DeleteCount      atomic.Int64
	DeleteMisses     atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordUpsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpsert(duration time.Duration) {
	b.UpsertCount.Add(1)
	b.UpsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordBatchUpsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchUpsert(count int, duration time.Duration) {
	b.BatchUpsertCount.Add(1)
	b.BatchUpsertItems.Add(int64(count))
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, removed bool) {
	b.DeleteCount.Add(1)
	if !removed {
		b.DeleteMisses.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		UpsertCount:      b.UpsertCount.Load(),
		UpsertAvgNanos:   avgNanos(b.UpsertTotalNanos.Load(), b.UpsertCount.Load()),
		BatchUpsertCount: b.BatchUpsertCount.Load(),
		BatchUpsertItems: b.BatchUpsertItems.Load(),
		DeleteCount:      b.DeleteCount.Load(),
		DeleteMisses:     b.DeleteMisses.Load(),
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		SearchAvgNanos:   avgNanos(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	UpsertCount      int64
	UpsertAvgNanos   int64
	BatchUpsertCount int64
	BatchUpsertItems int64
	DeleteCount      int64
	DeleteMisses     int64
	SearchCount      int64
	SearchErrors     int64
	SearchAvgNanos   int64
}
