package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Spotter
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Search Metrics
	SearchesTotal        prometheus.CounterVec
	SearchDuration       prometheus.Histogram
	DetailLookupsTotal   prometheus.CounterVec
	SearchDeadlinesTotal prometheus.Counter

	// Cache Metrics
	CacheRowsPruned prometheus.Counter
	CachedFlights   prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotter_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spotter_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "spotter_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Search Metrics
		SearchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotter_searches_total",
				Help: "Total flight searches by outcome",
			},
			[]string{"outcome"},
		),
		SearchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spotter_search_duration_seconds",
				Help:    "End-to-end flight search duration in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 15, 25, 35, 60},
			},
		),
		DetailLookupsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotter_detail_lookups_total",
				Help: "Total per-flight detail lookups by outcome",
			},
			[]string{"outcome"},
		),
		SearchDeadlinesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "spotter_search_deadlines_total",
				Help: "Searches that stopped scanning because the wall-clock budget ran out",
			},
		),

		// Cache Metrics
		CacheRowsPruned: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "spotter_cache_rows_pruned_total",
				Help: "Cached flights removed by the retention sweep",
			},
		),
		CachedFlights: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "spotter_cached_flights",
				Help: "Flights currently held in the persistent cache",
			},
		),
	}
}

// IncSearch records one completed search. Safe on a nil registry so services
// can run without metrics in tests.
func (m *MetricsRegistry) IncSearch(outcome string) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(outcome).Inc()
}

// IncDetailLookup records one detail lookup attempt by outcome.
func (m *MetricsRegistry) IncDetailLookup(outcome string) {
	if m == nil {
		return
	}
	m.DetailLookupsTotal.WithLabelValues(outcome).Inc()
}

// IncSearchDeadline records a search cut short by its deadline.
func (m *MetricsRegistry) IncSearchDeadline() {
	if m == nil {
		return
	}
	m.SearchDeadlinesTotal.Inc()
}

// ObserveSearchDuration records the end-to-end search duration.
func (m *MetricsRegistry) ObserveSearchDuration(seconds float64) {
	if m == nil {
		return
	}
	m.SearchDuration.Observe(seconds)
}

// AddPrunedRows records rows removed by a retention sweep.
func (m *MetricsRegistry) AddPrunedRows(count int64) {
	if m == nil {
		return
	}
	m.CacheRowsPruned.Add(float64(count))
}
