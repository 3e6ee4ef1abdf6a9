package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks hub statistics using atomic operations for thread-safety
type Metrics struct {
	EventsPublished atomic.Int64
	EventsDropped   atomic.Int64
	Subscribers     atomic.Int32
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncPublished increments the published events counter
func (m *Metrics) IncPublished() {
	m.EventsPublished.Add(1)
}

// IncDropped increments the dropped events counter
func (m *Metrics) IncDropped() {
	m.EventsDropped.Add(1)
}

// SetSubscribers sets the current subscriber count
func (m *Metrics) SetSubscribers(count int32) {
	m.Subscribers.Store(count)
}

// Snapshot returns a point-in-time copy of the counters for reporting
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsPublished: m.EventsPublished.Load(),
		EventsDropped:   m.EventsDropped.Load(),
		Subscribers:     m.Subscribers.Load(),
		UptimeSeconds:   int64(time.Since(m.StartTime).Seconds()),
	}
}

// MetricsSnapshot is the JSON shape served by the stats endpoint
type MetricsSnapshot struct {
	EventsPublished int64 `json:"events_published"`
	EventsDropped   int64 `json:"events_dropped"`
	Subscribers     int32 `json:"subscribers"`
	UptimeSeconds   int64 `json:"uptime_seconds"`
}
