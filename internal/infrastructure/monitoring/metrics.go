// Package monitoring provides Prometheus metrics and OpenTelemetry tracing
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger   *zap.Logger
	gatherer prometheus.Gatherer

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpResponseSize    *prometheus.HistogramVec

	// Matching metrics
	matchPercentage *prometheus.HistogramVec
	rankingDuration prometheus.Histogram
	pantrySize      prometheus.Histogram
	catalogSize     prometheus.Gauge

	// Business metrics
	recipeEventsTotal    *prometheus.CounterVec
	usersRegisteredTotal prometheus.Counter
	aiRequestsTotal      *prometheus.CounterVec
	aiRequestDuration    *prometheus.HistogramVec

	// System metrics
	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	cacheOperations *prometheus.CounterVec
	errorRateTotal  *prometheus.CounterVec
}

var _ outbound.MetricsRecorder = (*MetricsCollector)(nil)

// NewMetricsCollector creates a new metrics collector registered on reg.
// Tests pass a fresh prometheus.NewRegistry to avoid duplicate registration.
func NewMetricsCollector(reg prometheus.Registerer, gatherer prometheus.Gatherer, logger *zap.Logger) *MetricsCollector {
	factory := promauto.With(reg)

	return &MetricsCollector{
		logger:   logger.Named("metrics"),
		gatherer: gatherer,

		// HTTP metrics
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status_code"},
		),
		httpResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"method", "route"},
		),

		// Matching metrics
		matchPercentage: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipe_match_percentage",
				Help:    "Distribution of recipe match percentages against user pantries",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
			[]string{"source"},
		),
		rankingDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recipe_ranking_duration_seconds",
				Help:    "Time spent scoring and ranking the catalog",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
		),
		pantrySize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pantry_size_items",
				Help:    "Number of distinct pantry names used for a ranking",
				Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
			},
		),
		catalogSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "recipe_catalog_size",
				Help: "Number of recipes in the catalog at the last ranking",
			},
		),

		// Business metrics
		recipeEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipe_events_total",
				Help: "Total number of recipe domain events by name",
			},
			[]string{"event"},
		),
		usersRegisteredTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Total number of users registered",
			},
		),
		aiRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_requests_total",
				Help: "Total number of AI and video requests",
			},
			[]string{"provider", "operation", "status"},
		),
		aiRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ai_request_duration_seconds",
				Help:    "AI request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"provider", "operation"},
		),

		// System metrics
		dbQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"operation", "table"},
		),
		dbQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_query_errors_total",
				Help: "Total number of failed database statements",
			},
			[]string{"operation", "table"},
		),
		cacheOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_operations_total",
				Help: "Total number of cache operations",
			},
			[]string{"operation", "status"},
		),
		errorRateTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "error_rate_total",
				Help: "Total error rate",
			},
			[]string{"service", "error_type"},
		),
	}
}

// HTTPMiddleware records request count, latency and response size per chi route
func (m *MetricsCollector) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		statusCode := strconv.Itoa(status)
		duration := time.Since(start).Seconds()

		m.httpRequestsTotal.WithLabelValues(r.Method, route, statusCode).Inc()
		m.httpRequestDuration.WithLabelValues(r.Method, route, statusCode).Observe(duration)
		m.httpResponseSize.WithLabelValues(r.Method, route).Observe(float64(ww.BytesWritten()))

		// Record errors
		if status >= 400 {
			errorType := "client_error"
			if status >= 500 {
				errorType = "server_error"
			}
			m.errorRateTotal.WithLabelValues("http", errorType).Inc()
		}
	})
}

// RankingCompleted records one catalog ranking
func (m *MetricsCollector) RankingCompleted(source string, pantryNames, catalogSize int, percentages []int, duration time.Duration) {
	m.rankingDuration.Observe(duration.Seconds())
	m.pantrySize.Observe(float64(pantryNames))
	m.catalogSize.Set(float64(catalogSize))
	for _, p := range percentages {
		m.matchPercentage.WithLabelValues(source).Observe(float64(p))
	}
}

// RecipeEvent counts a recipe domain event
func (m *MetricsCollector) RecipeEvent(name string) {
	m.recipeEventsTotal.WithLabelValues(name).Inc()
}

// UserRegistered counts a new account
func (m *MetricsCollector) UserRegistered() {
	m.usersRegisteredTotal.Inc()
}

// AIRequest records one call to an external AI or video provider
func (m *MetricsCollector) AIRequest(provider, operation, status string, duration time.Duration) {
	m.aiRequestsTotal.WithLabelValues(provider, operation, status).Inc()
	m.aiRequestDuration.WithLabelValues(provider, operation).Observe(duration.Seconds())
}

// DBQuery records one database statement
func (m *MetricsCollector) DBQuery(operation, table string, duration time.Duration, err error) {
	m.dbQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// CacheOperation counts a cache call by outcome (hit, miss, error, ok)
func (m *MetricsCollector) CacheOperation(operation, status string) {
	m.cacheOperations.WithLabelValues(operation, status).Inc()
}

// RecordError counts an error for a service
func (m *MetricsCollector) RecordError(service, errorType string) {
	m.errorRateTotal.WithLabelValues(service, errorType).Inc()
}

// Handler returns the Prometheus metrics HTTP handler
func (m *MetricsCollector) Handler() http.Handler {
	if m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
