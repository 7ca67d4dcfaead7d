package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	SlotsOffered       *prometheus.HistogramVec
	BookingsCreated    *prometheus.CounterVec
	SeriesFailures     *prometheus.CounterVec
	EvaluationsCreated *prometheus.CounterVec
	SubmissionRejected *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}, []string{"db"}),
		DBInUseConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}, []string{"db"}),
		DBIdleConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}, []string{"db"}),

		SlotsOffered: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "scheduling_slots_offered",
			Help:        "Number of slots offered per availability request",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 2, 4, 8, 12, 16, 24, 32, 48},
		}, []string{"purpose"}),
		BookingsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_bookings_created_total",
			Help:        "Bookings persisted, one per session",
			ConstLabels: labels,
		}, []string{"service_id"}),
		SeriesFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_series_failures_total",
			Help:        "Series submissions that failed while persisting",
			ConstLabels: labels,
		}, []string{"service_id"}),
		EvaluationsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_evaluations_created_total",
			Help:        "Evaluations persisted",
			ConstLabels: labels,
		}, []string{"type"}),
		SubmissionRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_submission_rejected_total",
			Help:        "Booking submissions rejected by validation",
			ConstLabels: labels,
		}, []string{"reason"}),
	}
}

// ObserveHTTP записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveQuery записывает метрики одного запроса к БД
func (m *Metrics) ObserveQuery(operation string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
