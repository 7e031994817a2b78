package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Prometheus implements Metrics on a prometheus registry.
type Prometheus struct {
	ordersScheduled *prometheus.CounterVec
	driverSearches  *prometheus.CounterVec
	feedSyncs       *prometheus.CounterVec
	feedDrivers     prometheus.Gauge
	httpDuration    *prometheus.HistogramVec
}

// NewPrometheusMetrics creates and registers all collectors on reg, including
// the standard Go and process collectors.
func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		ordersScheduled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "dispatch_orders_scheduled_total",
			Help:        "Total order scheduling attempts by outcome.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		driverSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "dispatch_driver_searches_total",
			Help:        "Total nearest-driver searches by matching phase.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"phase"}),
		feedSyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "dispatch_feed_syncs_total",
			Help:        "Total location feed pulls by outcome.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		feedDrivers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "dispatch_feed_drivers",
			Help:        "Number of drivers reported by the last successful feed pull.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "dispatch_http_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
	}

	reg.MustRegister(
		m.ordersScheduled,
		m.driverSearches,
		m.feedSyncs,
		m.feedDrivers,
		m.httpDuration,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordOrderScheduled(status string) {
	p.ordersScheduled.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordDriverSearch(phase string) {
	p.driverSearches.WithLabelValues(phase).Inc()
}

func (p *Prometheus) RecordFeedSync(success bool, driverCount int) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.feedSyncs.WithLabelValues(status).Inc()
	if success {
		p.feedDrivers.Set(float64(driverCount))
	}
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, statusCode string, duration time.Duration) {
	p.httpDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}
