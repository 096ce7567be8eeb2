// Package metrics коллекторы Prometheus для HTTP, базы данных и аналитики
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	service string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration *prometheus.HistogramVec
	DBPoolOpenConns *prometheus.GaugeVec
	DBPoolInUse     *prometheus.GaugeVec
	DBPoolIdle      *prometheus.GaugeVec

	// Аналитика: секции отчета, замененные на дефолт из-за ошибки вычисления
	ReportSectionsDegraded *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в default registry
func New(service string) *Metrics {
	return &Metrics{
		service: service,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		DBPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Number of open connections in the pool",
		}, []string{"service"}),

		DBPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBPoolIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Number of idle connections in the pool",
		}, []string{"service"}),

		ReportSectionsDegraded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "analytics_report_sections_degraded_total",
			Help: "Report sections replaced by their zero default after a computation failure",
		}, []string{"service", "section"}),
	}
}

// ObserveHTTPRequest регистрирует выполненный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, path).Observe(seconds)
}

// ObserveDBQuery регистрирует длительность запроса к базе
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.service, operation).Observe(seconds)
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBPoolOpenConns.WithLabelValues(m.service).Set(float64(open))
	m.DBPoolInUse.WithLabelValues(m.service).Set(float64(inUse))
	m.DBPoolIdle.WithLabelValues(m.service).Set(float64(idle))
}

// IncSectionDegraded регистрирует секцию отчета, замененную на дефолт
func (m *Metrics) IncSectionDegraded(section string) {
	if m == nil {
		return
	}
	m.ReportSectionsDegraded.WithLabelValues(m.service, section).Inc()
}
