// Package metrics exposes the service's Prometheus instrumentation behind a
// small interface so that application code never touches the registry
// directly.
package metrics

import "time"

// Metrics records the business and infrastructure events of the service.
type Metrics interface {
	// Business
	RecordOrderScheduled(status string)
	RecordDriverSearch(phase string)
	RecordFeedSync(success bool, driverCount int)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration time.Duration)
}

// Noop discards every recording. Useful in tests and in tools that reuse the
// application wiring without an exporter.
type Noop struct{}

func (Noop) RecordOrderScheduled(string) {}

func (Noop) RecordDriverSearch(string) {}

func (Noop) RecordFeedSync(bool, int) {}

func (Noop) ObserveHTTPRequestDuration(string, string, string, time.Duration) {}
