package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBConnsOpen     prometheus.Gauge
	DBConnsIdle     prometheus.Gauge
	DBConnsInUse    prometheus.Gauge

	// Бизнес-метрики
	ReservationsTotal  *prometheus.CounterVec
	TierAnomaliesTotal prometheus.Counter
	QuotesTotal        *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation"}),

		DBConnsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: labels,
		}),

		DBConnsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: labels,
		}),

		DBConnsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections in use",
			ConstLabels: labels,
		}),

		ReservationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_reservations_total",
			Help:        "Slot reservation attempts by result",
			ConstLabels: labels,
		}, []string{"result"}),

		TierAnomaliesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "price_tier_anomalies_total",
			Help:        "Price resolutions that matched more than one tier",
			ConstLabels: labels,
		}),

		QuotesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "price_quotes_total",
			Help:        "Price quote computations by result",
			ConstLabels: labels,
		}, []string{"result"}),
	}
}

// ObserveReservation инкрементирует счётчик попыток резервирования
func (m *Metrics) ObserveReservation(result string) {
	m.ReservationsTotal.WithLabelValues(result).Inc()
}

// ObserveQuote инкрементирует счётчик расчётов котировок
func (m *Metrics) ObserveQuote(result string) {
	m.QuotesTotal.WithLabelValues(result).Inc()
}

// Результаты для ReservationsTotal / QuotesTotal
const (
	ResultOK       = "ok"
	ResultCapacity = "capacity_error"
	ResultBlocked  = "blocked"
	ResultError    = "error"
	ResultNoTier   = "tier_not_found"
)
