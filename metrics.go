package pixelgo

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/pixelgo/pixel"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordPlaneRead is called after each plane decode during ReadVariant.
	// duration is the time taken, err is nil if successful.
	RecordPlaneRead(duration time.Duration, err error)

	// RecordPlaneWrite is called after each plane encode during WriteVariant.
	RecordPlaneWrite(duration time.Duration, err error)

	// RecordConvert is called after each pixel type conversion.
	RecordConvert(from, to pixel.Type, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPlaneRead(time.Duration, error)                {}
func (NoopMetricsCollector) RecordPlaneWrite(time.Duration, error)               {}
func (NoopMetricsCollector) RecordConvert(pixel.Type, pixel.Type, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PlaneReadCount       atomic.Int64
	PlaneReadErrors      atomic.Int64
	PlaneReadTotalNanos  atomic.Int64
	PlaneWriteCount      atomic.Int64
	PlaneWriteErrors     atomic.Int64
	PlaneWriteTotalNanos atomic.Int64
	ConvertCount         atomic.Int64
	ConvertErrors        atomic.Int64
	ConvertTotalNanos    atomic.Int64
}

// RecordPlaneRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPlaneRead(duration time.Duration, err error) {
	b.PlaneReadCount.Add(1)
	b.PlaneReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PlaneReadErrors.Add(1)
	}
}

// RecordPlaneWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPlaneWrite(duration time.Duration, err error) {
	b.PlaneWriteCount.Add(1)
	b.PlaneWriteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PlaneWriteErrors.Add(1)
	}
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(_, _ pixel.Type, duration time.Duration, err error) {
	b.ConvertCount.Add(1)
	b.ConvertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConvertErrors.Add(1)
	}
}
