package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	visitQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_queries_total",
			Help: "Total number of visit queries",
		},
		[]string{"kind", "outcome"},
	)

	visitQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "visit_query_duration_seconds",
			Help:    "Visit query duration in seconds, storage included",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"kind"},
	)

	visitsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visits_skipped_total",
			Help: "Stored visit entries left out of query results",
		},
		[]string{"reason"},
	)

	visitUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_updates_total",
			Help: "Total number of visit updates",
		},
		[]string{"outcome"},
	)

	auditEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_events_total",
			Help: "Audit events by delivery outcome",
		},
		[]string{"outcome"},
	)

	storeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Record store operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"driver", "operation"},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records a finished request. path must be the route
// template, not the raw URL.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RequestStarted()  { httpRequestsInFlight.Inc() }
func RequestFinished() { httpRequestsInFlight.Dec() }

// RecordVisitQuery records a query of the given kind (list, stats, get).
func RecordVisitQuery(kind, outcome string, duration time.Duration) {
	visitQueriesTotal.WithLabelValues(kind, outcome).Inc()
	visitQueryDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordSkippedVisits adds the entries extraction refused to surface.
func RecordSkippedVisits(orphaned, duplicates, malformed int) {
	visitsSkippedTotal.WithLabelValues("orphaned").Add(float64(orphaned))
	visitsSkippedTotal.WithLabelValues("duplicate").Add(float64(duplicates))
	visitsSkippedTotal.WithLabelValues("malformed").Add(float64(malformed))
}

func RecordVisitUpdate(outcome string) {
	visitUpdatesTotal.WithLabelValues(outcome).Inc()
}

// RecordAuditEvent records the fate of an audit event: queued, dropped,
// delivered or failed.
func RecordAuditEvent(outcome string) {
	auditEventsTotal.WithLabelValues(outcome).Inc()
}

func RecordStoreOperation(driver, operation string, duration time.Duration) {
	storeOperationDuration.WithLabelValues(driver, operation).Observe(duration.Seconds())
}
