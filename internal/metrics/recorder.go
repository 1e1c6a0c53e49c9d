// Package metrics defines observability hooks for the content pipeline and
// HTTP surface, with a no-op default and a Prometheus implementation.
package metrics

import (
	"strconv"
	"time"
)

// Recorder defines observability hooks for content and HTTP metrics.
// Implementations may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveScanDuration(locale string, d time.Duration)
	ObserveFeedRenderDuration(locale string, d time.Duration)
	IncHTTPRequest(method, path string, status int)
	IncCacheResult(hit bool)
	IncViewIncrement()
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveScanDuration(string, time.Duration)       {}
func (NoopRecorder) ObserveFeedRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncHTTPRequest(string, string, int)              {}
func (NoopRecorder) IncCacheResult(bool)                             {}
func (NoopRecorder) IncViewIncrement()                               {}

func statusLabel(status int) string {
	return strconv.Itoa(status)
}

func cacheLabel(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
