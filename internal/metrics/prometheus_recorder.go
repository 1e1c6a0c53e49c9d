package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	scanDuration   *prom.HistogramVec
	feedDuration   *prom.HistogramVec
	httpRequests   *prom.CounterVec
	cacheResults   *prom.CounterVec
	viewIncrements prom.Counter
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		scanDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "blogd",
			Name:      "scan_duration_seconds",
			Help:      "Duration of content directory scans per locale",
			Buckets:   prom.DefBuckets,
		}, []string{"locale"}),
		feedDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "blogd",
			Name:      "feed_render_duration_seconds",
			Help:      "Duration of RSS feed rendering per locale",
			Buckets:   prom.DefBuckets,
		}, []string{"locale"}),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "blogd",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path pattern, and status",
		}, []string{"method", "path", "status"}),
		cacheResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "blogd",
			Name:      "summary_cache_results_total",
			Help:      "Summary cache lookups by hit/miss",
		}, []string{"result"}),
		viewIncrements: prom.NewCounter(prom.CounterOpts{
			Namespace: "blogd",
			Name:      "view_increments_total",
			Help:      "Total post view increments",
		}),
	}
	reg.MustRegister(pr.scanDuration, pr.feedDuration, pr.httpRequests, pr.cacheResults, pr.viewIncrements)
	return pr
}

func (p *PrometheusRecorder) ObserveScanDuration(locale string, d time.Duration) {
	p.scanDuration.WithLabelValues(locale).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveFeedRenderDuration(locale string, d time.Duration) {
	p.feedDuration.WithLabelValues(locale).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncHTTPRequest(method, path string, status int) {
	p.httpRequests.WithLabelValues(method, path, statusLabel(status)).Inc()
}

func (p *PrometheusRecorder) IncCacheResult(hit bool) {
	p.cacheResults.WithLabelValues(cacheLabel(hit)).Inc()
}

func (p *PrometheusRecorder) IncViewIncrement() {
	p.viewIncrements.Inc()
}

// HTTPHandler returns an http.Handler that serves Prometheus metrics for the provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
